package writerepo

import (
	"context"

	"sala-agenda/internal/infra"
	"sala-agenda/internal/infra/db"
	"sala-agenda/internal/usecase/commands"

	"github.com/google/uuid"
)

type CustomerRepository struct {
	db db.DBTX
}

func NewCustomerRepository(db db.DBTX) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Single statement so two concurrent submissions for the same contact cannot
// both pass a separate existence check and insert twice. The update wins when
// either phone or email already matches; empty draft fields never clobber
// stored values.
const upsertCustomerByContactSQL = `
WITH updated AS (
	UPDATE clientes
	SET nombre = COALESCE(NULLIF($1, ''), nombre),
	    apellidos = COALESCE(NULLIF($2, ''), apellidos),
	    telefono = COALESCE(NULLIF($3, ''), telefono),
	    email = COALESCE(NULLIF($4, ''), email),
	    restricciones_dieteticas = COALESCE(NULLIF($5, ''), restricciones_dieteticas),
	    fecha_ultima_reserva = $7,
	    updated_at = now()
	WHERE ($3 <> '' AND telefono = $3) OR ($4 <> '' AND email = $4)
	RETURNING id
),
inserted AS (
	INSERT INTO clientes (nombre, apellidos, telefono, email,
	                      restricciones_dieteticas, origen_registro,
	                      fecha_ultima_reserva, activo)
	SELECT $1, $2, $3, $4, NULLIF($5, ''), $6, $7, TRUE
	WHERE NOT EXISTS (SELECT 1 FROM updated)
	RETURNING id
)
SELECT id FROM updated
UNION ALL
SELECT id FROM inserted`

func (r *CustomerRepository) UpsertByContact(ctx context.Context, params commands.UpsertCustomerParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, upsertCustomerByContactSQL,
		params.FirstName,
		params.LastName,
		params.Phone,
		params.Email,
		params.DietaryNotes,
		params.Origin,
		params.LastReservedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert customer by contact", err)
	}
	return id, nil
}
