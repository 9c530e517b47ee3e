package composer

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"sala-agenda/internal/domain/reservation"
	"sala-agenda/internal/pkg/config"
	"sala-agenda/internal/pkg/debounce"
	"sala-agenda/internal/usecase/commands"
	"sala-agenda/internal/usecase/queries"

	"github.com/google/uuid"
)

// State is the composer lifecycle. Searching and editing are both live form
// states; searching only adds an open suggestion list.
type State string

const (
	StateClosed     State = "closed"
	StateEditing    State = "editing"
	StateSearching  State = "searching"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
)

// Sink receives session events. Implementations must be cheap and non-blocking;
// calls arrive from timer and worker goroutines.
type Sink interface {
	StateChanged(state State)
	SuggestionsChanged(items []queries.SuggestionView)
	SubmitSucceeded(view *queries.ReservationView)
	SubmitFailed(err error)
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) StateChanged(State)                          {}
func (NopSink) SuggestionsChanged([]queries.SuggestionView) {}
func (NopSink) SubmitSucceeded(*queries.ReservationView)    {}
func (NopSink) SubmitFailed(error)                          {}

// Session drives one quick-reservation composer: a draft being edited, a
// debounced customer search, and an at-most-one-in-flight submission. All
// exported methods are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	cfg      config.ComposerConfig
	search   queries.CustomerSearchQueries
	commands commands.QuickReservationCommands
	staffID  uuid.UUID
	sink     Sink

	state       State
	draft       reservation.Draft
	suggestions []queries.SuggestionView

	debouncer *debounce.Debouncer
	searchGen uint64

	// idempotencyKey identifies one logical submission. It survives a failed
	// attempt so the retry replays instead of double-booking, and rolls over
	// once the draft changes or the submission lands.
	idempotencyKey uuid.UUID
	submitting     bool

	lifetime context.Context
	cancel   context.CancelFunc
}

func NewSession(
	cfg config.ComposerConfig,
	search queries.CustomerSearchQueries,
	cmds commands.QuickReservationCommands,
	staffID uuid.UUID,
	sink Sink,
) *Session {
	if sink == nil {
		sink = NopSink{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		cfg:       cfg,
		search:    search,
		commands:  cmds,
		staffID:   staffID,
		sink:      sink,
		state:     StateClosed,
		debouncer: debounce.NewDebouncer(cfg.SearchQuietPeriod),
		lifetime:  ctx,
		cancel:    cancel,
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Draft() reservation.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *Session) Suggestions() []queries.SuggestionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suggestions
}

// Open starts a session for one date with a fresh draft. Clicking a slot
// prefills its time; an empty slotTime leaves the time to be picked before
// submit. Opening an already open session is a no-op.
func (s *Session) Open(date, slotTime string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateClosed {
		return
	}
	s.draft = reservation.Draft{Date: date, Time: slotTime, PartySize: 2}
	s.suggestions = nil
	s.idempotencyKey = uuid.Nil
	s.setStateLocked(StateEditing)
}

// Close abandons the session. Pending searches are dropped; an in-flight
// submission keeps running server-side but its result is discarded.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return
	}
	s.teardownLocked()
}

// Shutdown permanently disposes the session.
func (s *Session) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teardownLocked()
	s.debouncer.Stop()
}

func (s *Session) teardownLocked() {
	s.debouncer.Cancel()
	s.searchGen++
	s.cancel()
	s.lifetime, s.cancel = context.WithCancel(context.Background())
	s.suggestions = nil
	s.draft = reservation.Draft{}
	s.idempotencyKey = uuid.Nil
	s.submitting = false
	s.setStateLocked(StateClosed)
}

// UpdateDraft applies fn to the draft. Any edit invalidates the current
// idempotency key: the next submit is a new logical submission.
func (s *Session) UpdateDraft(fn func(d *reservation.Draft)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing && s.state != StateSearching {
		return
	}
	fn(&s.draft)
	s.idempotencyKey = uuid.Nil
}

// AdjustPartySize steps the party-size field by delta, clamped to
// [1, MaxPartySize]. Like any other edit it starts a new logical submission.
func (s *Session) AdjustPartySize(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing && s.state != StateSearching {
		return
	}
	size := s.draft.PartySize + delta
	if size < 1 {
		size = 1
	}
	if size > s.cfg.MaxPartySize {
		size = s.cfg.MaxPartySize
	}
	s.draft.PartySize = size
	s.idempotencyKey = uuid.Nil
}

// TypeSearch feeds one keystroke's worth of search text. Short inputs clear
// the suggestion list immediately and cancel any pending lookup; longer
// inputs fire one lookup after the quiet period, superseding earlier ones.
func (s *Session) TypeSearch(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing && s.state != StateSearching {
		return
	}

	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) < s.cfg.MinQueryLength {
		s.debouncer.Cancel()
		s.searchGen++
		s.clearSuggestionsLocked()
		return
	}

	s.searchGen++
	gen := s.searchGen
	s.debouncer.Schedule(func() {
		s.runSearch(gen, trimmed)
	})
}

func (s *Session) runSearch(gen uint64, text string) {
	s.mu.Lock()
	if gen != s.searchGen || (s.state != StateEditing && s.state != StateSearching) {
		s.mu.Unlock()
		return
	}
	ctx := s.lifetime
	s.mu.Unlock()

	items, err := s.search.Search(ctx, text)
	if err != nil {
		slog.Warn("customer search failed", "error", err.Error())
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.searchGen || (s.state != StateEditing && s.state != StateSearching) {
			return
		}
		// Stale results must not linger; the form itself stays usable
		s.clearSuggestionsLocked()
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// A newer keystroke or a teardown happened while the query ran
	if gen != s.searchGen || (s.state != StateEditing && s.state != StateSearching) {
		return
	}
	s.suggestions = items
	if len(items) > 0 {
		s.setStateLocked(StateSearching)
	} else {
		s.setStateLocked(StateEditing)
	}
	s.sink.SuggestionsChanged(items)
}

// ApplySuggestion copies a picked suggestion into the draft and closes the
// suggestion list. Date, time and party size are left as typed.
func (s *Session) ApplySuggestion(item queries.SuggestionView) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing && s.state != StateSearching {
		return
	}

	s.draft.FirstName = item.FirstName
	s.draft.LastName = item.LastName
	s.draft.Phone = item.Phone
	s.draft.Email = item.Email
	s.draft.DietaryNotes = item.DietaryNotes
	s.draft.Notes = item.Notes
	s.idempotencyKey = uuid.Nil
	s.debouncer.Cancel()
	s.searchGen++
	s.clearSuggestionsLocked()
}

// DismissSuggestions closes the suggestion list without touching the draft.
func (s *Session) DismissSuggestions() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSearching {
		return
	}
	s.debouncer.Cancel()
	s.searchGen++
	s.clearSuggestionsLocked()
}

func (s *Session) clearSuggestionsLocked() {
	if s.suggestions != nil {
		s.suggestions = nil
		s.sink.SuggestionsChanged(nil)
	}
	if s.state == StateSearching {
		s.setStateLocked(StateEditing)
	}
}

// Submit validates the draft and runs the reservation command once. A second
// Submit while one is in flight is ignored. Validation failures surface
// through the sink and leave the draft editable; so do command failures.
func (s *Session) Submit() {
	s.mu.Lock()

	if s.state != StateEditing && s.state != StateSearching {
		s.mu.Unlock()
		return
	}
	if s.submitting {
		s.mu.Unlock()
		return
	}

	if err := s.draft.Validate(); err != nil {
		s.mu.Unlock()
		s.sink.SubmitFailed(err)
		return
	}

	if s.idempotencyKey == uuid.Nil {
		s.idempotencyKey = uuid.New()
	}
	key := s.idempotencyKey
	draft := s.draft
	lifetime := s.lifetime
	s.submitting = true
	s.debouncer.Cancel()
	s.searchGen++
	s.setStateLocked(StateSubmitting)
	s.mu.Unlock()

	go s.runSubmit(lifetime, draft, key)
}

func (s *Session) runSubmit(lifetime context.Context, draft reservation.Draft, key uuid.UUID) {
	ctx, cancel := context.WithTimeout(lifetime, s.cfg.SubmitTimeout)
	defer cancel()

	result, err := s.commands.Create(ctx, draft, s.staffID, key)

	s.mu.Lock()
	s.submitting = false
	if s.state != StateSubmitting {
		// Session was closed while the command ran
		s.mu.Unlock()
		return
	}

	if err != nil {
		s.setStateLocked(StateEditing)
		s.mu.Unlock()
		s.sink.SubmitFailed(err)
		return
	}

	s.idempotencyKey = uuid.Nil
	s.setStateLocked(StateSucceeded)
	s.mu.Unlock()
	s.sink.SubmitSucceeded(result.Reservation)

	s.scheduleSuccessClose()
}

// scheduleSuccessClose leaves the success state on screen briefly, then
// resets the draft and closes the session.
func (s *Session) scheduleSuccessClose() {
	timer := time.NewTimer(s.cfg.SuccessCloseDelay)
	go func() {
		select {
		case <-timer.C:
		case <-s.lifetimeDone():
			timer.Stop()
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.state != StateSucceeded {
			return
		}
		s.draft.Reset()
		s.teardownLocked()
	}()
}

func (s *Session) lifetimeDone() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lifetime.Done()
}

func (s *Session) setStateLocked(state State) {
	if s.state == state {
		return
	}
	s.state = state
	s.sink.StateChanged(state)
}
