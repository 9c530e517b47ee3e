package api

import (
	"errors"
	"net/http"

	resdto "sala-agenda/internal/handler/dto/response"
	"sala-agenda/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TimelineHandler struct {
	timelineQueries queries.TimelineQueries
}

func NewTimelineHandler(timelineQueries queries.TimelineQueries) *TimelineHandler {
	return &TimelineHandler{
		timelineQueries: timelineQueries,
	}
}

// @Summary Timeline for one day
// @Description Slot grid for a date with every reservation bucketed into its slot
// @Tags timeline
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date in YYYY-MM-DD"
// @Success 200 {object} resdto.TimelineDayResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /timeline/{date} [get]
func (h *TimelineHandler) GetDay(c *gin.Context) {
	date := c.Param("date")

	view, err := h.timelineQueries.GetDay(c.Request.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTimelineDayView(view))
}
