package readstore

import (
	"context"

	"sala-agenda/internal/infra"
	"sala-agenda/internal/infra/db"
	"sala-agenda/internal/pkg/pgconv"
	"sala-agenda/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(db db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: db}
}

const searchCustomersSQL = `
SELECT id, nombre, apellidos, telefono, email,
       restricciones_dieteticas, notas_internas, fecha_ultima_reserva, activo
FROM clientes
WHERE activo = TRUE
  AND (nombre ILIKE '%' || $1 || '%'
       OR apellidos ILIKE '%' || $1 || '%'
       OR telefono ILIKE '%' || $1 || '%'
       OR email ILIKE '%' || $1 || '%')
ORDER BY fecha_ultima_reserva DESC NULLS LAST, apellidos, nombre
LIMIT $2`

// SearchByText matches active customers by partial name, surname, phone or
// email, most recently seen first.
func (r *CustomerReadStore) SearchByText(ctx context.Context, text string, limit int32) ([]queries.CustomerView, error) {
	rows, err := r.db.Query(ctx, searchCustomersSQL, text, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search customers", err)
	}
	defer rows.Close()

	var result []queries.CustomerView
	for rows.Next() {
		var (
			view     queries.CustomerView
			dietary  pgtype.Text
			notes    pgtype.Text
			lastSeen pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.FirstName, &view.LastName, &view.Phone, &view.Email,
			&dietary, &notes, &lastSeen, &view.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer row", err)
		}
		view.DietaryNotes = pgconv.StringPtrFromPgtype(dietary)
		view.InternalNotes = pgconv.StringPtrFromPgtype(notes)
		view.LastReservationAt = pgconv.TimePtrFromPgtype(lastSeen)
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customer rows", err)
	}
	return result, nil
}
