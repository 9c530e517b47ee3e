package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"sala-agenda/internal/domain/customer"
	"sala-agenda/internal/domain/reservation"
	"sala-agenda/internal/infra/db"
	"sala-agenda/internal/pkg/clock"
	"sala-agenda/internal/pkg/errs"
	"sala-agenda/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDuplicateSubmission     = errs.New("duplicate submission with different parameters")
	ErrIdempotencyInProgress   = errs.New("idempotency in progress")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrIdempotencyKeyRequired  = errs.New("idempotency key required")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
	ErrReservationNotFound     = errs.New("reservation not found")
)

const quickReservationEndpoint = "POST /reservations"

type CreateQuickReservationResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type QuickReservationCommands interface {
	Create(ctx context.Context, draft reservation.Draft, staffID uuid.UUID, idempotencyKey uuid.UUID) (*CreateQuickReservationResult, error)
}

type quickReservationImpl struct {
	reservationRepo  ReservationRepository
	customerRepo     CustomerRepository
	idempotencyRepo  IdempotencyRepository
	notificationRepo NotificationRepository
	invalidator      TimelineInvalidator
	readStore        queries.ReservationReadStore
	db               TxStarter
	clock            clock.Clock
}

func NewQuickReservationCommands(
	reservationRepo ReservationRepository,
	customerRepo CustomerRepository,
	idempotencyRepo IdempotencyRepository,
	notificationRepo NotificationRepository,
	invalidator TimelineInvalidator,
	readStore queries.ReservationReadStore,
	db TxStarter,
	clock clock.Clock,
) QuickReservationCommands {
	return &quickReservationImpl{
		reservationRepo:  reservationRepo,
		customerRepo:     customerRepo,
		idempotencyRepo:  idempotencyRepo,
		notificationRepo: notificationRepo,
		invalidator:      invalidator,
		readStore:        readStore,
		db:               db,
		clock:            clock,
	}
}

// Create commits one quick reservation. The customer upsert runs first and is
// swallowed on failure: reservation creation takes priority over customer
// bookkeeping. The reservation insert is fatal on failure. A replayed
// idempotency key returns the original reservation without touching the store.
func (c *quickReservationImpl) Create(
	ctx context.Context,
	draft reservation.Draft,
	staffID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CreateQuickReservationResult, error) {
	if idempotencyKey == uuid.Nil {
		return nil, ErrIdempotencyKeyRequired
	}

	requestHash := calculateRequestHash(draft)
	expiresAt := c.clock.Now().Add(24 * time.Hour)

	replayed, err := c.handleIdempotency(ctx, idempotencyKey, staffID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CreateQuickReservationResult{Reservation: replayed, IsReplayed: true}, nil
	}

	entity, err := reservation.NewFromDraft(c.clock, draft)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	c.upsertCustomer(ctx, draft, entity)

	view, err := c.insertReservation(ctx, entity, idempotencyKey, staffID)
	if err != nil {
		return nil, err
	}

	if invErr := c.invalidator.InvalidateDay(ctx, entity.Date()); invErr != nil {
		slog.Warn("timeline cache invalidation failed", "date", entity.Date(), "error", invErr.Error())
	}

	return &CreateQuickReservationResult{Reservation: view, IsReplayed: false}, nil
}

// handleIdempotency returns the stored reservation when the key was already
// completed, nil when the key is fresh and processing may start.
func (c *quickReservationImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, staffID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.ReservationView, error) {
	inserted, err := c.idempotencyRepo.TryInsert(ctx, idempotencyKey, staffID, quickReservationEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := c.idempotencyRepo.Get(ctx, idempotencyKey, staffID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		if existing.ResultReservationID == nil {
			return nil, errs.New("completed request missing result reservation ID")
		}
		return c.readStore.FindByID(ctx, *existing.ResultReservationID)

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateSubmission
		}
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

// upsertCustomer keeps the customer book in sync with what was just typed in.
// Failure here must never block reservation creation.
func (c *quickReservationImpl) upsertCustomer(ctx context.Context, draft reservation.Draft, entity *reservation.Reservation) {
	_, err := c.customerRepo.UpsertByContact(ctx, UpsertCustomerParams{
		FirstName:      strings.TrimSpace(draft.FirstName),
		LastName:       strings.TrimSpace(draft.LastName),
		Phone:          entity.Phone().Value(),
		Email:          entity.Email().Value(),
		DietaryNotes:   entity.DietaryNotes(),
		Origin:         string(customer.OriginQuickReservation),
		LastReservedAt: c.clock.Now(),
	})
	if err != nil {
		slog.Warn("customer upsert failed, continuing with reservation insert",
			"phone", entity.Phone().Value(), "error", err.Error())
	}
}

func (c *quickReservationImpl) insertReservation(
	ctx context.Context,
	entity *reservation.Reservation,
	idempotencyKey, staffID uuid.UUID,
) (*queries.ReservationView, error) {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr.Error())
		}
	}()

	reservationID, err := c.reservationRepo.Create(ctx, tx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if notifErr := c.createNotificationJob(ctx, tx, reservationID); notifErr != nil {
		return nil, errs.Mark(notifErr, ErrDatabaseOperationFailed)
	}

	responseHash := calculateIDHash(reservationID)
	if err := c.idempotencyRepo.UpdateStatusCompleted(ctx, tx, idempotencyKey, staffID, responseHash, reservationID); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	// Read-after-write for the complete view
	view, err := c.readStore.FindByID(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *quickReservationImpl) createNotificationJob(ctx context.Context, tx db.DBTX, reservationID uuid.UUID) error {
	payload, err := json.Marshal(map[string]any{
		"reservation_id": reservationID,
		"type":           "reservation_created",
	})
	if err != nil {
		return err
	}
	return c.notificationRepo.CreateJob(ctx, tx, "email", "reservation_created", payload, c.clock.Now())
}

func calculateRequestHash(draft reservation.Draft) string {
	data, _ := json.Marshal(draft)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
