package readstore

import (
	"context"

	"sala-agenda/internal/infra"
	"sala-agenda/internal/infra/db"
	"sala-agenda/internal/pkg/pgconv"
	"sala-agenda/internal/usecase/queries"

	"github.com/google/uuid"
)

type StaffReadStore struct {
	db db.DBTX
}

func NewStaffReadStore(db db.DBTX) *StaffReadStore {
	return &StaffReadStore{db: db}
}

const findStaffByIDSQL = `
SELECT id, email, role, is_active
FROM usuarios
WHERE id = $1`

func (r *StaffReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.StaffView, error) {
	var view queries.StaffView
	err := r.db.QueryRow(ctx, findStaffByIDSQL, id).
		Scan(&view.ID, &view.Email, &view.Role, &view.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff member by ID", err)
	}
	return &view, nil
}

const findStaffByEmailSQL = `
SELECT id, email, role, is_active, password_hash
FROM usuarios
WHERE email = $1`

func (r *StaffReadStore) FindByEmail(ctx context.Context, email string) (*queries.StaffView, string, error) {
	var (
		view queries.StaffView
		hash string
	)
	err := r.db.QueryRow(ctx, findStaffByEmailSQL, email).
		Scan(&view.ID, &view.Email, &view.Role, &view.IsActive, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("staff member not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find staff member by email", err)
	}
	return &view, hash, nil
}
