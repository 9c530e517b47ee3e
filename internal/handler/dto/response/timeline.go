package response

import (
	"sala-agenda/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TimelineReservationResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"nombre_reserva"`
	PartySize   int32     `json:"numero_personas"`
	Status      string    `json:"estado"`
}

type TimelineSlotResponse struct {
	Time         string                        `json:"time"`
	Kind         string                        `json:"kind"`
	Bookable     bool                          `json:"bookable"`
	Reservations []TimelineReservationResponse `json:"reservations"`
}

type TimelineDayResponse struct {
	Date           string                 `json:"date"`
	Slots          []TimelineSlotResponse `json:"slots"`
	SkippedRecords int                    `json:"skipped_records"`
}

func FromTimelineDayView(view *queries.TimelineDayView) *TimelineDayResponse {
	var resp TimelineDayResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
