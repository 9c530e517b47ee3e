//go:build unit

package queries_test

import (
	"context"
	"testing"

	"sala-agenda/internal/pkg/errs"
	"sala-agenda/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCustomerReadStore struct {
	rows  []queries.CustomerView
	err   error
	calls int
	query string
}

func (f *fakeCustomerReadStore) SearchByText(_ context.Context, text string, _ int32) ([]queries.CustomerView, error) {
	f.calls++
	f.query = text
	return f.rows, f.err
}

type fakeStubReadStore struct {
	stubs []queries.ReservationStubView
	err   error
	calls int
}

func (f *fakeStubReadStore) SearchStubs(_ context.Context, _ string, _ int32) ([]queries.ReservationStubView, error) {
	f.calls++
	return f.stubs, f.err
}

func (f *fakeStubReadStore) FindByID(context.Context, uuid.UUID) (*queries.ReservationView, error) {
	panic("not used")
}

func (f *fakeStubReadStore) FindByDate(context.Context, string) ([]queries.DayReservationRow, error) {
	panic("not used")
}

func TestCustomerSearch(t *testing.T) {
	mariaID := uuid.New()
	maria := queries.CustomerView{
		ID: mariaID, FirstName: "Maria", LastName: "Garcia",
		Phone: "+34634567890", Email: "maria@example.com",
	}

	t.Run("merges clients and reservation stubs with provenance", func(t *testing.T) {
		customers := &fakeCustomerReadStore{rows: []queries.CustomerView{maria}}
		stubs := &fakeStubReadStore{stubs: []queries.ReservationStubView{
			{DisplayName: "Luis Prieto", Phone: "+34611222333", Email: "luis@example.com"},
		}}
		q := queries.NewCustomerSearchQueries(customers, stubs, 2, 8)

		views, err := q.Search(context.Background(), "mar")

		require.NoError(t, err)
		expected := []queries.SuggestionView{
			{
				CustomerID: &mariaID, Source: "client",
				FirstName: "Maria", LastName: "Garcia",
				Phone: "+34634567890", Email: "maria@example.com",
			},
			{
				Source:    "reservation",
				FirstName: "Luis", LastName: "Prieto",
				Phone: "+34611222333", Email: "luis@example.com",
			},
		}
		if diff := cmp.Diff(expected, views); diff != "" {
			t.Errorf("suggestions mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("client record wins over a stub with the same phone", func(t *testing.T) {
		customers := &fakeCustomerReadStore{rows: []queries.CustomerView{maria}}
		stubs := &fakeStubReadStore{stubs: []queries.ReservationStubView{
			{DisplayName: "M. Garcia", Phone: "+34 634 567 890"},
		}}
		q := queries.NewCustomerSearchQueries(customers, stubs, 2, 8)

		views, err := q.Search(context.Background(), "garcia")

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "client", views[0].Source)
	})

	t.Run("result list is capped at the configured maximum", func(t *testing.T) {
		var rows []queries.CustomerView
		for i := 0; i < 6; i++ {
			rows = append(rows, queries.CustomerView{
				ID: uuid.New(), FirstName: "Cliente", LastName: string(rune('A' + i)),
				Phone: "+3460000000" + string(rune('0'+i)),
			})
		}
		q := queries.NewCustomerSearchQueries(&fakeCustomerReadStore{rows: rows}, &fakeStubReadStore{}, 2, 4)

		views, err := q.Search(context.Background(), "cliente")

		require.NoError(t, err)
		assert.Len(t, views, 4)
	})

	t.Run("below the minimum length no store is queried", func(t *testing.T) {
		customers := &fakeCustomerReadStore{}
		stubs := &fakeStubReadStore{}
		q := queries.NewCustomerSearchQueries(customers, stubs, 2, 8)

		views, err := q.Search(context.Background(), " m ")

		require.NoError(t, err)
		assert.Nil(t, views)
		assert.Zero(t, customers.calls)
		assert.Zero(t, stubs.calls)
	})

	t.Run("query text is trimmed before matching", func(t *testing.T) {
		customers := &fakeCustomerReadStore{}
		q := queries.NewCustomerSearchQueries(customers, &fakeStubReadStore{}, 2, 8)

		_, err := q.Search(context.Background(), "  maria  ")

		require.NoError(t, err)
		assert.Equal(t, "maria", customers.query)
	})

	t.Run("error: customer store failure propagates", func(t *testing.T) {
		customers := &fakeCustomerReadStore{err: errs.New("db down")}
		q := queries.NewCustomerSearchQueries(customers, &fakeStubReadStore{}, 2, 8)

		_, err := q.Search(context.Background(), "maria")

		assert.Error(t, err)
	})

	t.Run("error: reservation store failure propagates", func(t *testing.T) {
		stubs := &fakeStubReadStore{err: errs.New("db down")}
		q := queries.NewCustomerSearchQueries(&fakeCustomerReadStore{}, stubs, 2, 8)

		_, err := q.Search(context.Background(), "maria")

		assert.Error(t, err)
	})
}
