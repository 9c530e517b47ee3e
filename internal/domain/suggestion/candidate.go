package suggestion

import (
	"strings"

	"github.com/google/uuid"
)

// Source tags where a candidate came from: a real customer row or a
// pseudo-customer derived from reservation history.
type Source string

const (
	SourceClient      Source = "client"
	SourceReservation Source = "reservation"
)

// Candidate is an autofill suggestion offered while the quick-reservation
// form is being typed into. Reservation-derived candidates have no customer
// link; their CustomerID is nil.
type Candidate struct {
	CustomerID   *uuid.UUID
	Source       Source
	FirstName    string
	LastName     string
	Phone        string
	Email        string
	DietaryNotes string
	Notes        string
}

// SplitDisplayName splits a stored nombre_reserva heuristically: first token
// is the given name, the rest is the surname.
func SplitDisplayName(full string) (first, last string) {
	fields := strings.Fields(full)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}
