package commands

import (
	"context"
	"time"

	"sala-agenda/internal/domain/reservation"
	"sala-agenda/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Write-side ports implemented by internal/infra/writerepo.

// TxStarter opens write transactions; *pgxpool.Pool satisfies it.
type TxStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
}

// UpsertCustomerParams carries the contact merge for upsert-by-contact: the
// store updates the customer matched by phone OR email, else inserts a new
// record tagged with Origin.
type UpsertCustomerParams struct {
	FirstName      string
	LastName       string
	Phone          string
	Email          string
	DietaryNotes   string
	Origin         string
	LastReservedAt time.Time
}

type CustomerRepository interface {
	UpsertByContact(ctx context.Context, params UpsertCustomerParams) (uuid.UUID, error)
}

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}

type IdempotencyRepository interface {
	// TryInsert claims the key for this user; false means another request
	// holds it already.
	TryInsert(ctx context.Context, key uuid.UUID, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key uuid.UUID, userID uuid.UUID) (*IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key uuid.UUID, userID uuid.UUID, responseBodyHash string, resultReservationID uuid.UUID) error
}

type StaffRepository interface {
	UpdateLastLogin(ctx context.Context, staffID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type TimelineInvalidator interface {
	InvalidateDay(ctx context.Context, date string) error
}
