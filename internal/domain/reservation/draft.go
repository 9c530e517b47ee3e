package reservation

import (
	"strings"

	"sala-agenda/internal/domain/customer"
	"sala-agenda/internal/pkg/errs"
)

var (
	ErrMissingTime      = errs.New("reservation time is required")
	ErrMissingDate      = errs.New("reservation date is required")
	ErrInvalidPartySize = errs.New("party size must be at least 1")
)

// Draft is the in-progress quick-reservation form. It is invalid until every
// required field passes Validate; the UI stepper cap on party size is a
// presentation concern and deliberately not enforced here (only the lower
// bound is).
type Draft struct {
	Date         string // YYYY-MM-DD
	Time         string // HH:MM; empty until the user picks a slot
	FirstName    string
	LastName     string
	Phone        string
	Email        string
	PartySize    int
	DietaryNotes string
	Notes        string
}

// Validate checks every submit-gating rule and reports the first violation.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Date) == "" {
		return ErrMissingDate
	}
	if strings.TrimSpace(d.Time) == "" {
		return ErrMissingTime
	}
	if _, err := customer.NewPersonName(d.FirstName); err != nil {
		return err
	}
	if _, err := customer.NewPersonName(d.LastName); err != nil {
		return err
	}
	if _, err := customer.NewPhone(d.Phone); err != nil {
		return err
	}
	if _, err := customer.NewEmail(d.Email); err != nil {
		return err
	}
	if d.PartySize < 1 {
		return ErrInvalidPartySize
	}
	return nil
}

// DisplayName composes the nombre_reserva value stored on the reservation.
func (d Draft) DisplayName() string {
	return strings.TrimSpace(strings.TrimSpace(d.FirstName) + " " + strings.TrimSpace(d.LastName))
}

// Reset clears the draft back to its just-opened state, keeping the date.
func (d *Draft) Reset() {
	*d = Draft{Date: d.Date, PartySize: 2}
}
