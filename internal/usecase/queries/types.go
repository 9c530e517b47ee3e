package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ReservationView struct {
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
}

// DayReservationRow is the slim projection the timeline needs for one date.
// Time is the stored hora_reserva verbatim; canonicalization happens in the
// timeline domain so malformed rows can be skipped per record.
type DayReservationRow struct {
	ID          uuid.UUID
	RawTime     string
	DisplayName string
	PartySize   int32
	Status      string
	Phone       string
}

type CustomerView struct {
	ID                uuid.UUID  `json:"id"`
	FirstName         string     `json:"nombre"`
	LastName          string     `json:"apellidos"`
	Phone             string     `json:"telefono"`
	Email             string     `json:"email"`
	DietaryNotes      *string    `json:"restricciones_dieteticas,omitempty"`
	InternalNotes     *string    `json:"notas_internas,omitempty"`
	LastReservationAt *time.Time `json:"fecha_ultima_reserva,omitempty"`
	IsActive          bool       `json:"activo"`
}

// ReservationStubView is a reservation-history row with no customer link,
// offered as a pseudo-customer suggestion.
type ReservationStubView struct {
	DisplayName  string
	Phone        string
	Email        string
	DietaryNotes *string
	Notes        *string
}

type StaffView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// Timeline views; cached as JSON, so every field is exported and tagged.

type TimelineReservationView struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"nombre_reserva"`
	PartySize   int32     `json:"numero_personas"`
	Status      string    `json:"estado"`
}

type TimelineSlotView struct {
	Time         string                    `json:"time"`
	Kind         string                    `json:"kind"`
	Bookable     bool                      `json:"bookable"`
	Reservations []TimelineReservationView `json:"reservations"`
}

type TimelineDayView struct {
	Date           string             `json:"date"`
	Slots          []TimelineSlotView `json:"slots"`
	SkippedRecords int                `json:"skipped_records"`
}

type SuggestionView struct {
	CustomerID   *uuid.UUID `json:"customer_id,omitempty"`
	Source       string     `json:"source"`
	FirstName    string     `json:"nombre"`
	LastName     string     `json:"apellidos"`
	Phone        string     `json:"telefono"`
	Email        string     `json:"email"`
	DietaryNotes string     `json:"restricciones_dieteticas,omitempty"`
	Notes        string     `json:"notas,omitempty"`
}

// Read store ports implemented by internal/infra/readstore.

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByDate(ctx context.Context, date string) ([]DayReservationRow, error)
	SearchStubs(ctx context.Context, text string, limit int32) ([]ReservationStubView, error)
}

type CustomerReadStore interface {
	SearchByText(ctx context.Context, text string, limit int32) ([]CustomerView, error)
}

type StaffReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StaffView, error)
	FindByEmail(ctx context.Context, email string) (*StaffView, string, error)
}

// TimelineCache is the day-view cache. GetDay returns (nil, nil) on a miss.
type TimelineCache interface {
	GetDay(ctx context.Context, date string) (*TimelineDayView, error)
	SetDay(ctx context.Context, day *TimelineDayView) error
	InvalidateDay(ctx context.Context, date string) error
}
