package request

import (
	"sala-agenda/internal/domain/reservation"
)

// CreateQuickReservationRequest is the quick-composer submit payload. Field
// names mirror the reservas columns the front desk already knows. Validation
// beyond presence lives in the domain draft, not in binding tags, so the API
// rejects with the same rules the composer enforces.
type CreateQuickReservationRequest struct {
	Date         string `json:"fecha_reserva" binding:"required"`
	Time         string `json:"hora_reserva" binding:"required"`
	FirstName    string `json:"nombre" binding:"required"`
	LastName     string `json:"apellidos" binding:"required"`
	Phone        string `json:"telefono" binding:"required"`
	Email        string `json:"email" binding:"required"`
	PartySize    int    `json:"numero_personas" binding:"required"`
	DietaryNotes string `json:"alergias"`
	Notes        string `json:"notas"`
}

func (r *CreateQuickReservationRequest) ToDraft() reservation.Draft {
	return reservation.Draft{
		Date:         r.Date,
		Time:         r.Time,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Phone:        r.Phone,
		Email:        r.Email,
		PartySize:    r.PartySize,
		DietaryNotes: r.DietaryNotes,
		Notes:        r.Notes,
	}
}
