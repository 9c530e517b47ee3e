//go:build unit

package composer

import (
	"context"
	"sync"
	"testing"
	"time"

	"sala-agenda/internal/domain/reservation"
	"sala-agenda/internal/pkg/config"
	"sala-agenda/internal/pkg/errs"
	"sala-agenda/internal/usecase/commands"
	"sala-agenda/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearch struct {
	mu      sync.Mutex
	calls   []string
	results []queries.SuggestionView
	err     error
}

func (f *fakeSearch) Search(_ context.Context, text string) ([]queries.SuggestionView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, text)
	return f.results, f.err
}

func (f *fakeSearch) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeSearch) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeSearch) lastCall() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return ""
	}
	return f.calls[len(f.calls)-1]
}

type fakeCommands struct {
	mu      sync.Mutex
	calls   []uuid.UUID // idempotency keys, one per Create
	drafts  []reservation.Draft
	result  *commands.CreateQuickReservationResult
	err     error
	block   chan struct{} // when non-nil, Create waits until closed
}

func (f *fakeCommands) Create(_ context.Context, draft reservation.Draft, _ uuid.UUID, key uuid.UUID) (*commands.CreateQuickReservationResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, key)
	f.drafts = append(f.drafts, draft)
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeCommands) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeCommands) keyAt(i int) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[i]
}

func (f *fakeCommands) draftAt(i int) reservation.Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.drafts[i]
}

type recordingSink struct {
	mu          sync.Mutex
	states      []State
	suggestions [][]queries.SuggestionView
	succeeded   []*queries.ReservationView
	failed      []error
}

func (r *recordingSink) StateChanged(s State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *recordingSink) SuggestionsChanged(items []queries.SuggestionView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suggestions = append(r.suggestions, items)
}

func (r *recordingSink) SubmitSucceeded(v *queries.ReservationView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.succeeded = append(r.succeeded, v)
}

func (r *recordingSink) SubmitFailed(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = append(r.failed, err)
}

func (r *recordingSink) successCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.succeeded)
}

func (r *recordingSink) failureCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.failed)
}

func (r *recordingSink) lastFailure() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.failed) == 0 {
		return nil
	}
	return r.failed[len(r.failed)-1]
}

func testComposerConfig() config.ComposerConfig {
	return config.ComposerConfig{
		SearchQuietPeriod: 30 * time.Millisecond,
		MinQueryLength:    2,
		SuccessCloseDelay: 40 * time.Millisecond,
		SubmitTimeout:     time.Second,
		MaxSuggestions:    5,
		MaxPartySize:      6,
	}
}

func validDraftEdit(d *reservation.Draft) {
	d.Time = "19:30"
	d.FirstName = "Maria"
	d.LastName = "Garcia"
	d.Phone = "+34634567890"
	d.Email = "maria@example.com"
	d.PartySize = 2
}

func newTestSession(t *testing.T, search *fakeSearch, cmds *fakeCommands) (*Session, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	s := NewSession(testComposerConfig(), search, cmds, uuid.New(), sink)
	t.Cleanup(s.Shutdown)
	return s, sink
}

func TestSession_OpenStartsFreshDraft(t *testing.T) {
	s, _ := newTestSession(t, &fakeSearch{}, &fakeCommands{})

	s.Open("2024-07-10", "")

	assert.Equal(t, StateEditing, s.State())
	draft := s.Draft()
	assert.Equal(t, "2024-07-10", draft.Date)
	assert.Equal(t, 2, draft.PartySize)
	assert.Empty(t, draft.Time)
}

func TestSession_OpenFromSlotPrefillsTime(t *testing.T) {
	s, _ := newTestSession(t, &fakeSearch{}, &fakeCommands{})

	s.Open("2024-07-10", "19:30")

	assert.Equal(t, "19:30", s.Draft().Time)
}

func TestSession_TypeSearchCollapsesBurst(t *testing.T) {
	search := &fakeSearch{results: []queries.SuggestionView{{FirstName: "Maria"}}}
	s, _ := newTestSession(t, search, &fakeCommands{})
	s.Open("2024-07-10", "")

	for _, text := range []string{"ma", "mar", "mari", "maria"} {
		s.TypeSearch(text)
	}

	require.Eventually(t, func() bool { return search.callCount() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "maria", search.lastCall())
	assert.Equal(t, StateSearching, s.State())
	assert.Len(t, s.Suggestions(), 1)

	// No extra lookups straggle in after the burst settled
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, search.callCount())
}

func TestSession_TypeSearchBelowMinLengthClearsWithoutQuery(t *testing.T) {
	search := &fakeSearch{results: []queries.SuggestionView{{FirstName: "Maria"}}}
	s, _ := newTestSession(t, search, &fakeCommands{})
	s.Open("2024-07-10", "")

	s.TypeSearch("maria")
	require.Eventually(t, func() bool { return len(s.Suggestions()) == 1 }, time.Second, 5*time.Millisecond)

	s.TypeSearch("m")

	assert.Empty(t, s.Suggestions())
	assert.Equal(t, StateEditing, s.State())
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, search.callCount())
}

func TestSession_SearchFailureClearsSuggestions(t *testing.T) {
	search := &fakeSearch{results: []queries.SuggestionView{{FirstName: "Maria"}}}
	s, _ := newTestSession(t, search, &fakeCommands{})
	s.Open("2024-07-10", "")

	s.TypeSearch("maria")
	require.Eventually(t, func() bool { return len(s.Suggestions()) == 1 }, time.Second, 5*time.Millisecond)

	search.setErr(errs.New("lookup failed"))
	s.TypeSearch("maria g")
	require.Eventually(t, func() bool { return search.callCount() == 2 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return len(s.Suggestions()) == 0 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, StateEditing, s.State())

	// The form stays usable: a later successful lookup repopulates the list
	search.setErr(nil)
	s.TypeSearch("maria")
	require.Eventually(t, func() bool { return len(s.Suggestions()) == 1 }, time.Second, 5*time.Millisecond)
}

func TestSession_AdjustPartySizeClampsToConfiguredRange(t *testing.T) {
	s, _ := newTestSession(t, &fakeSearch{}, &fakeCommands{})
	s.Open("2024-07-10", "")

	s.AdjustPartySize(100)
	assert.Equal(t, 6, s.Draft().PartySize, "stepper caps at the configured maximum")

	s.AdjustPartySize(-100)
	assert.Equal(t, 1, s.Draft().PartySize, "stepper never drops below one")

	s.AdjustPartySize(2)
	assert.Equal(t, 3, s.Draft().PartySize)
}

func TestSession_ApplySuggestionFillsDraft(t *testing.T) {
	customerID := uuid.New()
	search := &fakeSearch{results: []queries.SuggestionView{{
		CustomerID:   &customerID,
		FirstName:    "Maria",
		LastName:     "Garcia Lopez",
		Phone:        "+34634567890",
		Email:        "maria@example.com",
		DietaryNotes: "sin gluten",
	}}}
	s, _ := newTestSession(t, search, &fakeCommands{})
	s.Open("2024-07-10", "")
	s.UpdateDraft(func(d *reservation.Draft) { d.PartySize = 4 })

	s.TypeSearch("maria")
	require.Eventually(t, func() bool { return s.State() == StateSearching }, time.Second, 5*time.Millisecond)

	s.ApplySuggestion(s.Suggestions()[0])

	draft := s.Draft()
	assert.Equal(t, "Maria", draft.FirstName)
	assert.Equal(t, "Garcia Lopez", draft.LastName)
	assert.Equal(t, "+34634567890", draft.Phone)
	assert.Equal(t, "maria@example.com", draft.Email)
	assert.Equal(t, "sin gluten", draft.DietaryNotes)
	assert.Equal(t, 4, draft.PartySize, "party size stays as typed")
	assert.Empty(t, s.Suggestions())
	assert.Equal(t, StateEditing, s.State())
}

func TestSession_SubmitHappyPathClosesAfterDelay(t *testing.T) {
	view := &queries.ReservationView{ID: uuid.New(), Status: "pendiente"}
	cmds := &fakeCommands{result: &commands.CreateQuickReservationResult{Reservation: view}}
	s, sink := newTestSession(t, &fakeSearch{}, cmds)
	s.Open("2024-07-10", "")
	s.UpdateDraft(validDraftEdit)

	s.Submit()

	require.Eventually(t, func() bool { return sink.successCount() == 1 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return s.State() == StateClosed }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, cmds.callCount())
	assert.Equal(t, 1, sink.successCount(), "success is delivered exactly once")
	assert.Zero(t, sink.failureCount())
}

func TestSession_SubmitValidationFailureKeepsEditing(t *testing.T) {
	cmds := &fakeCommands{}
	s, sink := newTestSession(t, &fakeSearch{}, cmds)
	s.Open("2024-07-10", "")
	s.UpdateDraft(func(d *reservation.Draft) {
		validDraftEdit(d)
		d.Time = "" // slot never picked
	})

	s.Submit()

	assert.Equal(t, 1, sink.failureCount())
	assert.ErrorIs(t, sink.lastFailure(), reservation.ErrMissingTime)
	assert.Equal(t, StateEditing, s.State())
	assert.Zero(t, cmds.callCount(), "invalid draft never reaches the command")
}

func TestSession_SubmitCommandFailureKeepsDraftIntact(t *testing.T) {
	cmds := &fakeCommands{err: errs.New("insert failed")}
	s, sink := newTestSession(t, &fakeSearch{}, cmds)
	s.Open("2024-07-10", "")
	s.UpdateDraft(validDraftEdit)

	s.Submit()

	require.Eventually(t, func() bool { return sink.failureCount() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, StateEditing, s.State())
	draft := s.Draft()
	assert.Equal(t, "Maria", draft.FirstName, "typed values survive a failed submit")
	assert.Equal(t, "19:30", draft.Time)
}

func TestSession_SecondSubmitWhileInFlightIsIgnored(t *testing.T) {
	block := make(chan struct{})
	view := &queries.ReservationView{ID: uuid.New()}
	cmds := &fakeCommands{result: &commands.CreateQuickReservationResult{Reservation: view}, block: block}
	s, sink := newTestSession(t, &fakeSearch{}, cmds)
	s.Open("2024-07-10", "")
	s.UpdateDraft(validDraftEdit)

	s.Submit()
	require.Eventually(t, func() bool { return cmds.callCount() == 1 }, time.Second, 5*time.Millisecond)
	s.Submit()
	s.Submit()
	close(block)

	require.Eventually(t, func() bool { return sink.successCount() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, cmds.callCount())
}

func TestSession_RetryAfterFailureReusesIdempotencyKey(t *testing.T) {
	cmds := &fakeCommands{err: errs.New("transient")}
	s, sink := newTestSession(t, &fakeSearch{}, cmds)
	s.Open("2024-07-10", "")
	s.UpdateDraft(validDraftEdit)

	s.Submit()
	require.Eventually(t, func() bool { return sink.failureCount() == 1 }, time.Second, 5*time.Millisecond)
	s.Submit()
	require.Eventually(t, func() bool { return cmds.callCount() == 2 }, time.Second, 5*time.Millisecond)

	assert.Equal(t, cmds.keyAt(0), cmds.keyAt(1), "unchanged retry replays the same submission")
}

func TestSession_EditAfterFailureRotatesIdempotencyKey(t *testing.T) {
	cmds := &fakeCommands{err: errs.New("transient")}
	s, sink := newTestSession(t, &fakeSearch{}, cmds)
	s.Open("2024-07-10", "")
	s.UpdateDraft(validDraftEdit)

	s.Submit()
	require.Eventually(t, func() bool { return sink.failureCount() == 1 }, time.Second, 5*time.Millisecond)

	s.UpdateDraft(func(d *reservation.Draft) { d.PartySize = 3 })
	s.Submit()
	require.Eventually(t, func() bool { return cmds.callCount() == 2 }, time.Second, 5*time.Millisecond)

	assert.NotEqual(t, cmds.keyAt(0), cmds.keyAt(1), "an edited draft is a new submission")
}

func TestSession_ShutdownDropsPendingSearch(t *testing.T) {
	search := &fakeSearch{results: []queries.SuggestionView{{FirstName: "Maria"}}}
	s, _ := newTestSession(t, search, &fakeCommands{})
	s.Open("2024-07-10", "")

	s.TypeSearch("maria")
	s.Shutdown()

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, search.callCount(), "no lookup fires after teardown")
	assert.Equal(t, StateClosed, s.State())
}

func TestSession_CloseDiscardsInFlightSubmitResult(t *testing.T) {
	block := make(chan struct{})
	view := &queries.ReservationView{ID: uuid.New()}
	cmds := &fakeCommands{result: &commands.CreateQuickReservationResult{Reservation: view}, block: block}
	s, sink := newTestSession(t, &fakeSearch{}, cmds)
	s.Open("2024-07-10", "")
	s.UpdateDraft(validDraftEdit)

	s.Submit()
	require.Eventually(t, func() bool { return cmds.callCount() == 1 }, time.Second, 5*time.Millisecond)
	s.Close()
	close(block)

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, sink.successCount())
	assert.Equal(t, StateClosed, s.State())
}

func TestSession_EndToEndQuickReservation(t *testing.T) {
	customerID := uuid.New()
	search := &fakeSearch{results: []queries.SuggestionView{{
		CustomerID: &customerID,
		FirstName:  "Maria",
		LastName:   "Garcia",
		Phone:      "+34634567890",
		Email:      "maria@example.com",
	}}}
	view := &queries.ReservationView{
		ID:          uuid.New(),
		Date:        "2024-07-10",
		Time:        "19:30",
		DisplayName: "Maria Garcia",
		PartySize:   2,
		Status:      "pendiente",
		Origin:      "presencial",
	}
	cmds := &fakeCommands{result: &commands.CreateQuickReservationResult{Reservation: view}}
	s, sink := newTestSession(t, search, cmds)

	s.Open("2024-07-10", "19:30")
	s.TypeSearch("mar")
	s.TypeSearch("maria")
	require.Eventually(t, func() bool { return s.State() == StateSearching }, time.Second, 5*time.Millisecond)

	s.ApplySuggestion(s.Suggestions()[0])
	s.Submit()

	require.Eventually(t, func() bool { return sink.successCount() == 1 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return s.State() == StateClosed }, time.Second, 5*time.Millisecond)

	assert.Equal(t, 1, search.callCount(), "the burst produced a single lookup")
	require.Equal(t, 1, cmds.callCount())
	submitted := cmds.draftAt(0)
	assert.Equal(t, "2024-07-10", submitted.Date)
	assert.Equal(t, "19:30", submitted.Time)
	assert.Equal(t, "Maria", submitted.FirstName)
	assert.Equal(t, "+34634567890", submitted.Phone)
	assert.Equal(t, 2, submitted.PartySize)

	sink.mu.Lock()
	got := sink.succeeded[0]
	sink.mu.Unlock()
	assert.Equal(t, "pendiente", got.Status)
	assert.Equal(t, "presencial", got.Origin)
}
