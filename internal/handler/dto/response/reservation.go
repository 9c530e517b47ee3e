package response

import (
	"time"

	"sala-agenda/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	Date         string    `json:"fecha_reserva"`
	Time         string    `json:"hora_reserva"`
	DisplayName  string    `json:"nombre_reserva"`
	PartySize    int32     `json:"numero_personas"`
	Phone        string    `json:"telefono_reserva"`
	Email        string    `json:"email_reserva"`
	Status       string    `json:"estado"`
	Origin       string    `json:"origen"`
	DietaryNotes *string   `json:"alergias,omitempty"`
	Notes        *string   `json:"notas,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	IsReplayed   bool      `json:"is_replayed,omitempty"`
}

func FromReservationView(view *queries.ReservationView, isReplayed bool) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, view)
	resp.IsReplayed = isReplayed
	return &resp
}
