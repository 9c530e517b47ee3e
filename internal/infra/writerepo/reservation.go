package writerepo

import (
	"context"
	"errors"

	"sala-agenda/internal/domain/reservation"
	"sala-agenda/internal/infra"
	"sala-agenda/internal/infra/db"
	"sala-agenda/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const insertReservationSQL = `
INSERT INTO reservas (
	id, fecha_reserva, hora_reserva, nombre_reserva, numero_personas,
	telefono_reserva, email_reserva, estado, origen, alergias, notas, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertReservationSQL,
		res.ID(),
		res.Date(),
		res.SlotTime().String(),
		res.DisplayName(),
		res.PartySize(),
		res.Phone().Value(),
		res.Email().Value(),
		string(res.Status()),
		string(res.Origin()),
		pgconv.StringToPgtype(res.DietaryNotes()),
		pgconv.StringToPgtype(res.Notes()),
		res.CreatedAt(),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("reservation already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert reservation", err)
	}
	return id, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
