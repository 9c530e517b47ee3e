package readstore

import (
	"context"

	"sala-agenda/internal/infra"
	"sala-agenda/internal/infra/db"
	"sala-agenda/internal/pkg/pgconv"
	"sala-agenda/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

const findReservationByIDSQL = `
SELECT id, fecha_reserva, hora_reserva, nombre_reserva, numero_personas,
       telefono_reserva, email_reserva, estado, origen, alergias, notas, created_at
FROM reservas
WHERE id = $1`

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, findReservationByIDSQL, id)

	var (
		view      queries.ReservationView
		fecha     pgtype.Date
		alergias  pgtype.Text
		notas     pgtype.Text
		createdAt pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &fecha, &view.Time, &view.DisplayName, &view.PartySize,
		&view.Phone, &view.Email, &view.Status, &view.Origin, &alergias, &notas, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	view.Date = pgconv.DateString(fecha)
	view.DietaryNotes = pgconv.StringPtrFromPgtype(alergias)
	view.Notes = pgconv.StringPtrFromPgtype(notas)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

const findReservationsByDateSQL = `
SELECT id, hora_reserva, nombre_reserva, numero_personas, estado, telefono_reserva
FROM reservas
WHERE fecha_reserva = $1 AND estado <> 'cancelada'
ORDER BY hora_reserva, created_at`

// FindByDate returns the raw per-day rows for the timeline. hora_reserva is
// returned verbatim; the timeline domain canonicalizes and skips bad rows.
func (r *ReservationReadStore) FindByDate(ctx context.Context, date string) ([]queries.DayReservationRow, error) {
	rows, err := r.db.Query(ctx, findReservationsByDateSQL, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by date", err)
	}
	defer rows.Close()

	var result []queries.DayReservationRow
	for rows.Next() {
		var row queries.DayReservationRow
		if err := rows.Scan(&row.ID, &row.RawTime, &row.DisplayName, &row.PartySize, &row.Status, &row.Phone); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return result, nil
}

const searchReservationStubsSQL = `
SELECT DISTINCT ON (telefono_reserva, email_reserva)
       nombre_reserva, telefono_reserva, email_reserva, alergias, notas
FROM reservas
WHERE cliente_id IS NULL
  AND (nombre_reserva ILIKE '%' || $1 || '%'
       OR telefono_reserva ILIKE '%' || $1 || '%'
       OR email_reserva ILIKE '%' || $1 || '%')
ORDER BY telefono_reserva, email_reserva, created_at DESC
LIMIT $2`

// SearchStubs finds reservation rows with no customer link whose name, phone
// or email matches the text. These become pseudo-customer suggestions.
func (r *ReservationReadStore) SearchStubs(ctx context.Context, text string, limit int32) ([]queries.ReservationStubView, error) {
	rows, err := r.db.Query(ctx, searchReservationStubsSQL, text, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search reservation stubs", err)
	}
	defer rows.Close()

	var result []queries.ReservationStubView
	for rows.Next() {
		var (
			stub     queries.ReservationStubView
			alergias pgtype.Text
			notas    pgtype.Text
		)
		if err := rows.Scan(&stub.DisplayName, &stub.Phone, &stub.Email, &alergias, &notas); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation stub", err)
		}
		stub.DietaryNotes = pgconv.StringPtrFromPgtype(alergias)
		stub.Notes = pgconv.StringPtrFromPgtype(notas)
		result = append(result, stub)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation stubs", err)
	}
	return result, nil
}
