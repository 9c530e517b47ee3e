package queries

import (
	"context"

	"sala-agenda/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrStaffNotFound = errs.New("staff member not found")

type StaffQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*StaffView, error)
}

type staffQueriesImpl struct {
	readStore StaffReadStore
}

func NewStaffQueries(readStore StaffReadStore) StaffQueries {
	return &staffQueriesImpl{readStore: readStore}
}

func (q *staffQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*StaffView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStaffNotFound)
	}
	return view, nil
}
