//go:build unit || e2e

package builder

import (
	"time"

	"sala-agenda/internal/domain/reservation"
	reqdto "sala-agenda/internal/handler/dto/request"
	"sala-agenda/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID           uuid.UUID
	Date         string
	Time         string
	FirstName    string
	LastName     string
	Phone        string
	Email        string
	PartySize    int
	DietaryNotes string
	Notes        string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        uuid.New(),
		Date:      "2024-07-10",
		Time:      "19:30",
		FirstName: "Maria",
		LastName:  "Garcia",
		Phone:     "+34634567890",
		Email:     "maria@example.com",
		PartySize: 2,
	}
}

func (b *ReservationBuilder) WithTime(t string) *ReservationBuilder {
	b.Time = t
	return b
}

func (b *ReservationBuilder) WithPartySize(n int) *ReservationBuilder {
	b.PartySize = n
	return b
}

func (b *ReservationBuilder) BuildDTO() reqdto.CreateQuickReservationRequest {
	return reqdto.CreateQuickReservationRequest{
		Date:         b.Date,
		Time:         b.Time,
		FirstName:    b.FirstName,
		LastName:     b.LastName,
		Phone:        b.Phone,
		Email:        b.Email,
		PartySize:    b.PartySize,
		DietaryNotes: b.DietaryNotes,
		Notes:        b.Notes,
	}
}

func (b *ReservationBuilder) BuildDraft() reservation.Draft {
	return reservation.Draft{
		Date:         b.Date,
		Time:         b.Time,
		FirstName:    b.FirstName,
		LastName:     b.LastName,
		Phone:        b.Phone,
		Email:        b.Email,
		PartySize:    b.PartySize,
		DietaryNotes: b.DietaryNotes,
		Notes:        b.Notes,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:          b.ID,
		Date:        b.Date,
		Time:        b.Time,
		DisplayName: b.FirstName + " " + b.LastName,
		PartySize:   int32(b.PartySize),
		Phone:       b.Phone,
		Email:       b.Email,
		Status:      "pendiente",
		Origin:      "presencial",
		CreatedAt:   time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC),
	}
}
