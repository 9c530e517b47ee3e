package timeline

import (
	"time"

	"sala-agenda/internal/pkg/errs"
)

var (
	ErrInvalidWindow   = errs.New("service window opens at or after it closes")
	ErrOverlapWindows  = errs.New("service windows overlap or are out of order")
	ErrInvalidSlotStep = errs.New("slot step must be a positive whole number of minutes")
)

// SlotKind groups slots for presentation; it carries no booking semantics
// beyond the break window being non-bookable.
type SlotKind string

const (
	KindLunch  SlotKind = "lunch"
	KindDinner SlotKind = "dinner"
	KindBreak  SlotKind = "break"
)

// Window is a half-open [Opens, Closes) stretch of the day sliced into slots
// of the schedule's step.
type Window struct {
	Opens    ClockTime
	Closes   ClockTime
	Kind     SlotKind
	Bookable bool
}

// Slot is one fixed-width bucket of the day's timeline.
type Slot struct {
	Time     ClockTime
	Kind     SlotKind
	Bookable bool
}

// Key returns the canonical HH:MM string reservations are matched against.
func (s Slot) Key() string {
	return s.Time.String()
}

// Schedule is the immutable day template. For a given configuration Slots is
// total and deterministic: same ordered sequence every call, no slot omitted
// or duplicated.
type Schedule struct {
	windows []Window
	stepMin int
}

func NewSchedule(step time.Duration, windows ...Window) (Schedule, error) {
	stepMin := int(step / time.Minute)
	if stepMin <= 0 || step%time.Minute != 0 {
		return Schedule{}, ErrInvalidSlotStep
	}

	for i, w := range windows {
		if !w.Opens.Before(w.Closes) {
			return Schedule{}, ErrInvalidWindow
		}
		if i > 0 && windows[i-1].Closes.MinuteOfDay() > w.Opens.MinuteOfDay() {
			return Schedule{}, ErrOverlapWindows
		}
	}

	return Schedule{windows: windows, stepMin: stepMin}, nil
}

// NewRestaurantDay builds the standard two-service template: lunch, an
// explicit non-bookable break, then dinner.
func NewRestaurantDay(lunchOpens, lunchCloses, dinnerOpens, dinnerCloses ClockTime, step time.Duration) (Schedule, error) {
	return NewSchedule(step,
		Window{Opens: lunchOpens, Closes: lunchCloses, Kind: KindLunch, Bookable: true},
		Window{Opens: lunchCloses, Closes: dinnerOpens, Kind: KindBreak, Bookable: false},
		Window{Opens: dinnerOpens, Closes: dinnerCloses, Kind: KindDinner, Bookable: true},
	)
}

func (s Schedule) Step() time.Duration {
	return time.Duration(s.stepMin) * time.Minute
}

func (s Schedule) Windows() []Window {
	return append([]Window(nil), s.windows...)
}

// Slots generates the ordered slot sequence for the whole day. Iteration is
// on minute-of-day so a step that does not evenly divide a window still
// terminates at the window close instead of wrapping past midnight.
func (s Schedule) Slots() []Slot {
	var slots []Slot
	for _, w := range s.windows {
		for m := w.Opens.MinuteOfDay(); m < w.Closes.MinuteOfDay(); m += s.stepMin {
			slots = append(slots, Slot{
				Time:     ClockTime{hour: m / 60, minute: m % 60},
				Kind:     w.Kind,
				Bookable: w.Bookable,
			})
		}
	}
	return slots
}
