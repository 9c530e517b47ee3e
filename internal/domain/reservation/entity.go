package reservation

import (
	"time"

	"sala-agenda/internal/domain/customer"
	"sala-agenda/internal/domain/timeline"
	"sala-agenda/internal/pkg/clock"
	"sala-agenda/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidDate = errs.New("invalid reservation date")

// Reservation is a committed booking row. Quick-created reservations always
// start pending with the in-person origin tag.
type Reservation struct {
	id           uuid.UUID
	date         string
	slotTime     timeline.ClockTime
	displayName  string
	partySize    int
	phone        customer.Phone
	email        customer.Email
	status       Status
	origin       Origin
	dietaryNotes string
	notes        string
	createdAt    time.Time
}

// NewFromDraft builds the entity from a validated draft. The draft's time is
// canonicalized here so the stored hora_reserva always matches a slot key.
func NewFromDraft(clk clock.Clock, d Draft) (*Reservation, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if _, err := time.Parse("2006-01-02", d.Date); err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}
	slotTime, err := timeline.ParseClockTime(d.Time)
	if err != nil {
		return nil, err
	}
	phone, err := customer.NewPhone(d.Phone)
	if err != nil {
		return nil, err
	}
	email, err := customer.NewEmail(d.Email)
	if err != nil {
		return nil, err
	}

	return &Reservation{
		id:           uuid.New(),
		date:         d.Date,
		slotTime:     slotTime,
		displayName:  d.DisplayName(),
		partySize:    d.PartySize,
		phone:        phone,
		email:        email,
		status:       StatusPending,
		origin:       OriginQuick,
		dietaryNotes: d.DietaryNotes,
		notes:        d.Notes,
		createdAt:    clk.Now(),
	}, nil
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) Date() string                 { return r.date }
func (r *Reservation) SlotTime() timeline.ClockTime { return r.slotTime }
func (r *Reservation) DisplayName() string          { return r.displayName }
func (r *Reservation) PartySize() int               { return r.partySize }
func (r *Reservation) Phone() customer.Phone        { return r.phone }
func (r *Reservation) Email() customer.Email        { return r.email }
func (r *Reservation) Status() Status               { return r.status }
func (r *Reservation) Origin() Origin               { return r.origin }
func (r *Reservation) DietaryNotes() string         { return r.dietaryNotes }
func (r *Reservation) Notes() string                { return r.notes }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
