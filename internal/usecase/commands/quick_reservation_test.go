//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"sala-agenda/internal/domain/reservation"
	"sala-agenda/internal/infra/db"
	"sala-agenda/internal/pkg/clock"
	"sala-agenda/internal/pkg/errs"
	"sala-agenda/internal/usecase/commands"
	"sala-agenda/internal/usecase/queries"
	"sala-agenda/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	commits   int
	rollbacks int
	commitErr error
	committed bool
}

func (f *fakeTx) Commit(context.Context) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.commits++
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rollbacks++
	return nil
}

type fakeTxStarter struct {
	tx       *fakeTx
	beginErr error
}

func (f *fakeTxStarter) Begin(context.Context) (pgx.Tx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	return f.tx, nil
}

type fakeReservationRepo struct {
	id    uuid.UUID
	err   error
	calls int
	last  *reservation.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, _ db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	f.calls++
	f.last = res
	if f.err != nil {
		return uuid.Nil, f.err
	}
	return f.id, nil
}

type fakeCustomerRepo struct {
	err    error
	calls  int
	params commands.UpsertCustomerParams
}

func (f *fakeCustomerRepo) UpsertByContact(_ context.Context, params commands.UpsertCustomerParams) (uuid.UUID, error) {
	f.calls++
	f.params = params
	if f.err != nil {
		return uuid.Nil, f.err
	}
	return uuid.New(), nil
}

// fakeIdempotencyRepo mirrors the store contract: TryInsert reports whether
// the key was fresh, Get describes the existing record otherwise. mirrorHash
// makes Get echo the hash TryInsert saw, for same-request replays.
type fakeIdempotencyRepo struct {
	inserted     bool
	tryErr       error
	record       *commands.IdempotencyRecord
	getErr       error
	mirrorHash   bool
	lastTryHash  string
	completed    int
	completedErr error
}

func (f *fakeIdempotencyRepo) TryInsert(_ context.Context, _, _ uuid.UUID, _, requestHash string, _ time.Time) (bool, error) {
	f.lastTryHash = requestHash
	if f.tryErr != nil {
		return false, f.tryErr
	}
	return f.inserted, nil
}

func (f *fakeIdempotencyRepo) Get(_ context.Context, _, _ uuid.UUID) (*commands.IdempotencyRecord, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	record := *f.record
	if f.mirrorHash {
		record.RequestHash = f.lastTryHash
	}
	return &record, nil
}

func (f *fakeIdempotencyRepo) UpdateStatusCompleted(_ context.Context, _ db.DBTX, _, _ uuid.UUID, _ string, _ uuid.UUID) error {
	if f.completedErr != nil {
		return f.completedErr
	}
	f.completed++
	return nil
}

type fakeNotificationRepo struct {
	err   error
	calls int
}

func (f *fakeNotificationRepo) CreateJob(_ context.Context, _ db.DBTX, _, _ string, _ []byte, _ time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.calls++
	return nil
}

type fakeInvalidator struct {
	dates []string
	err   error
}

func (f *fakeInvalidator) InvalidateDay(_ context.Context, date string) error {
	f.dates = append(f.dates, date)
	return f.err
}

type fakeReservationReadStore struct {
	view *queries.ReservationView
	err  error
}

func (f *fakeReservationReadStore) FindByID(_ context.Context, _ uuid.UUID) (*queries.ReservationView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.view, nil
}

func (f *fakeReservationReadStore) FindByDate(context.Context, string) ([]queries.DayReservationRow, error) {
	panic("not used")
}

func (f *fakeReservationReadStore) SearchStubs(context.Context, string, int32) ([]queries.ReservationStubView, error) {
	panic("not used")
}

type commandFixture struct {
	tx          *fakeTx
	starter     *fakeTxStarter
	reservation *fakeReservationRepo
	customer    *fakeCustomerRepo
	idempotency *fakeIdempotencyRepo
	notif       *fakeNotificationRepo
	invalidator *fakeInvalidator
	readStore   *fakeReservationReadStore
	commands    commands.QuickReservationCommands
}

func newCommandFixture() *commandFixture {
	reservationID := uuid.New()
	tx := &fakeTx{}
	f := &commandFixture{
		tx:          tx,
		starter:     &fakeTxStarter{tx: tx},
		reservation: &fakeReservationRepo{id: reservationID},
		customer:    &fakeCustomerRepo{},
		idempotency: &fakeIdempotencyRepo{inserted: true},
		notif:       &fakeNotificationRepo{},
		invalidator: &fakeInvalidator{},
		readStore: &fakeReservationReadStore{
			view: &queries.ReservationView{ID: reservationID, Date: "2024-07-10", Time: "19:30", Status: "pendiente", Origin: "presencial"},
		},
	}
	f.commands = commands.NewQuickReservationCommands(
		f.reservation, f.customer, f.idempotency, f.notif, f.invalidator, f.readStore,
		f.starter, clock.NewMockClock(time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)),
	)
	return f
}

func TestQuickReservationCreate(t *testing.T) {
	draft := builder.NewReservationBuilder().BuildDraft()
	staffID := uuid.New()
	key := uuid.New()

	t.Run("success: inserts, completes the key and invalidates the day", func(t *testing.T) {
		f := newCommandFixture()

		result, err := f.commands.Create(context.Background(), draft, staffID, key)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.False(t, result.IsReplayed)
		assert.Equal(t, "pendiente", result.Reservation.Status)
		assert.Equal(t, 1, f.reservation.calls)
		assert.Equal(t, 1, f.notif.calls)
		assert.Equal(t, 1, f.idempotency.completed)
		assert.Equal(t, 1, f.tx.commits)
		assert.Equal(t, []string{"2024-07-10"}, f.invalidator.dates)
	})

	t.Run("success: stores the canonical hora_reserva", func(t *testing.T) {
		f := newCommandFixture()
		padded := draft
		padded.Time = "19:30:00"

		_, err := f.commands.Create(context.Background(), padded, staffID, key)

		require.NoError(t, err)
		assert.Equal(t, "19:30", f.reservation.last.SlotTime().String())
	})

	t.Run("error: missing idempotency key is rejected up front", func(t *testing.T) {
		f := newCommandFixture()

		_, err := f.commands.Create(context.Background(), draft, staffID, uuid.Nil)

		assert.ErrorIs(t, err, commands.ErrIdempotencyKeyRequired)
		assert.Zero(t, f.reservation.calls)
	})

	t.Run("error: invalid draft surfaces as domain validation", func(t *testing.T) {
		f := newCommandFixture()
		bad := draft
		bad.Phone = "612345678" // no international prefix

		_, err := f.commands.Create(context.Background(), bad, staffID, key)

		assert.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.Zero(t, f.reservation.calls)
		assert.Empty(t, f.invalidator.dates)
	})

	t.Run("customer upsert failure never blocks the reservation", func(t *testing.T) {
		f := newCommandFixture()
		f.customer.err = errs.New("clientes table on fire")

		result, err := f.commands.Create(context.Background(), draft, staffID, key)

		require.NoError(t, err)
		assert.False(t, result.IsReplayed)
		assert.Equal(t, 1, f.customer.calls)
		assert.Equal(t, 1, f.reservation.calls)
	})

	t.Run("error: reservation insert failure is fatal", func(t *testing.T) {
		f := newCommandFixture()
		f.reservation.err = errs.New("insert failed")

		_, err := f.commands.Create(context.Background(), draft, staffID, key)

		assert.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
		assert.Zero(t, f.tx.commits)
		assert.Equal(t, 1, f.tx.rollbacks)
		assert.Empty(t, f.invalidator.dates, "no cache invalidation for a failed insert")
	})

	t.Run("replay: completed key returns the original reservation", func(t *testing.T) {
		f := newCommandFixture()
		storedID := f.readStore.view.ID
		f.idempotency.inserted = false
		f.idempotency.record = &commands.IdempotencyRecord{
			Status:              "completed",
			ResultReservationID: &storedID,
		}

		result, err := f.commands.Create(context.Background(), draft, staffID, key)

		require.NoError(t, err)
		assert.True(t, result.IsReplayed)
		assert.Equal(t, storedID, result.Reservation.ID)
		assert.Zero(t, f.reservation.calls, "replay never touches the write path")
	})

	t.Run("error: same key with different parameters is a duplicate", func(t *testing.T) {
		f := newCommandFixture()
		f.idempotency.inserted = false
		f.idempotency.record = &commands.IdempotencyRecord{
			Status:      "processing",
			RequestHash: "someone-elses-hash",
		}

		_, err := f.commands.Create(context.Background(), draft, staffID, key)

		assert.ErrorIs(t, err, commands.ErrDuplicateSubmission)
	})

	t.Run("error: same request still processing reports in-progress", func(t *testing.T) {
		f := newCommandFixture()
		f.idempotency.inserted = false
		f.idempotency.mirrorHash = true
		f.idempotency.record = &commands.IdempotencyRecord{Status: "processing"}

		_, err := f.commands.Create(context.Background(), draft, staffID, key)

		assert.ErrorIs(t, err, commands.ErrIdempotencyInProgress)
	})

	t.Run("cache invalidation failure does not fail the command", func(t *testing.T) {
		f := newCommandFixture()
		f.invalidator.err = errs.New("redis away")

		result, err := f.commands.Create(context.Background(), draft, staffID, key)

		require.NoError(t, err)
		assert.NotNil(t, result)
	})
}
