package api

import (
	"net/http"

	resdto "sala-agenda/internal/handler/dto/response"
	"sala-agenda/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchQueries queries.CustomerSearchQueries
}

func NewSearchHandler(searchQueries queries.CustomerSearchQueries) *SearchHandler {
	return &SearchHandler{
		searchQueries: searchQueries,
	}
}

// @Summary Customer suggestions
// @Description Deduplicated customer suggestions for the quick composer search box
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search text, minimum two characters"
// @Success 200 {array} resdto.SuggestionResponse
// @Failure 401 {object} map[string]string
// @Router /customers/suggestions [get]
func (h *SearchHandler) Suggestions(c *gin.Context) {
	text := c.Query("q")

	views, err := h.searchQueries.Search(c.Request.Context(), text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	// Below the minimum query length the result is an empty list, not an error
	c.JSON(http.StatusOK, resdto.FromSuggestionViews(views))
}
