package queries

import (
	"context"
	"strings"

	"sala-agenda/internal/domain/suggestion"
)

const stubFetchLimit = 10 // fetch more than the cap so dedup has material

type CustomerSearchQueries interface {
	Search(ctx context.Context, text string) ([]SuggestionView, error)
}

type customerSearchImpl struct {
	customers    CustomerReadStore
	reservations ReservationReadStore
	minLength    int
	maxResults   int
}

func NewCustomerSearchQueries(customers CustomerReadStore, reservations ReservationReadStore, minLength, maxResults int) CustomerSearchQueries {
	return &customerSearchImpl{
		customers:    customers,
		reservations: reservations,
		minLength:    minLength,
		maxResults:   maxResults,
	}
}

// Search looks up both the customer table and the reservation history by
// case-insensitive partial match on name/surname/phone/email, merges the two
// result sets with provenance tags and returns at most maxResults deduplicated
// suggestions.
func (q *customerSearchImpl) Search(ctx context.Context, text string) ([]SuggestionView, error) {
	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) < q.minLength {
		return nil, nil
	}

	clientRows, err := q.customers.SearchByText(ctx, trimmed, int32(stubFetchLimit))
	if err != nil {
		return nil, err
	}
	stubRows, err := q.reservations.SearchStubs(ctx, trimmed, int32(stubFetchLimit))
	if err != nil {
		return nil, err
	}

	clients := make([]suggestion.Candidate, len(clientRows))
	for i, c := range clientRows {
		id := c.ID
		clients[i] = suggestion.Candidate{
			CustomerID:   &id,
			Source:       suggestion.SourceClient,
			FirstName:    c.FirstName,
			LastName:     c.LastName,
			Phone:        c.Phone,
			Email:        c.Email,
			DietaryNotes: deref(c.DietaryNotes),
			Notes:        deref(c.InternalNotes),
		}
	}

	stubs := make([]suggestion.Candidate, len(stubRows))
	for i, s := range stubRows {
		first, last := suggestion.SplitDisplayName(s.DisplayName)
		stubs[i] = suggestion.Candidate{
			Source:       suggestion.SourceReservation,
			FirstName:    first,
			LastName:     last,
			Phone:        s.Phone,
			Email:        s.Email,
			DietaryNotes: deref(s.DietaryNotes),
			Notes:        deref(s.Notes),
		}
	}

	merged := suggestion.Merge(clients, stubs, q.maxResults)

	views := make([]SuggestionView, len(merged))
	for i, c := range merged {
		views[i] = SuggestionView{
			CustomerID:   c.CustomerID,
			Source:       string(c.Source),
			FirstName:    c.FirstName,
			LastName:     c.LastName,
			Phone:        c.Phone,
			Email:        c.Email,
			DietaryNotes: c.DietaryNotes,
			Notes:        c.Notes,
		}
	}
	return views, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
