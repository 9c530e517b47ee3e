package writerepo

import (
	"context"

	"sala-agenda/internal/infra"
	"sala-agenda/internal/infra/db"

	"github.com/google/uuid"
)

type StaffRepository struct {
	db db.DBTX
}

func NewStaffRepository(db db.DBTX) *StaffRepository {
	return &StaffRepository{db: db}
}

const updateLastLoginSQL = `
UPDATE usuarios SET last_login_at = now() WHERE id = $1`

func (r *StaffRepository) UpdateLastLogin(ctx context.Context, staffID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, updateLastLoginSQL, staffID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
