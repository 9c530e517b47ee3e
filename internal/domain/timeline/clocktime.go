package timeline

import (
	"fmt"
	"strings"

	"sala-agenda/internal/pkg/errs"
)

// ErrUnparseableTime marks a stored time value that cannot be canonicalized.
// Callers can tell "malformed input" apart from "no matching slot".
var ErrUnparseableTime = errs.New("unparseable time value")

// ClockTime is a wall-clock minute within a single day, the canonical form
// every stored reservation time is reduced to before slot matching.
type ClockTime struct {
	hour   int
	minute int
}

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, errs.Newf("clock time out of range: %02d:%02d", hour, minute)
	}
	return ClockTime{hour: hour, minute: minute}, nil
}

// ParseClockTime canonicalizes a raw stored time into HH:MM. It accepts the
// precisions the reservation store has been seen to hold ("19:30",
// "19:30:00", "19:30:00.000", "9:30") and rejects everything else with
// ErrUnparseableTime.
func ParseClockTime(raw string) (ClockTime, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ClockTime{}, ErrUnparseableTime
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return ClockTime{}, ErrUnparseableTime
	}

	hour, err := parseComponent(parts[0], 1, 2)
	if err != nil {
		return ClockTime{}, err
	}
	minute, err := parseComponent(parts[1], 2, 2)
	if err != nil {
		return ClockTime{}, err
	}
	if len(parts) == 3 {
		// Seconds (possibly fractional) are tolerated and dropped.
		sec := parts[2]
		if dot := strings.IndexByte(sec, '.'); dot >= 0 {
			sec = sec[:dot]
		}
		if _, err := parseComponent(sec, 2, 2); err != nil {
			return ClockTime{}, err
		}
	}

	ct, err := NewClockTime(hour, minute)
	if err != nil {
		return ClockTime{}, errs.Mark(err, ErrUnparseableTime)
	}
	return ct, nil
}

// parseComponent accepts ASCII digits only, so "+9" and "-9" are rejected.
func parseComponent(s string, minLen, maxLen int) (int, error) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, ErrUnparseableTime
	}
	v := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrUnparseableTime
		}
		v = v*10 + int(s[i]-'0')
	}
	return v, nil
}

func (t ClockTime) Hour() int   { return t.hour }
func (t ClockTime) Minute() int { return t.minute }

// MinuteOfDay returns minutes since midnight, the ordering key for slots.
func (t ClockTime) MinuteOfDay() int {
	return t.hour*60 + t.minute
}

func (t ClockTime) Before(other ClockTime) bool {
	return t.MinuteOfDay() < other.MinuteOfDay()
}

// String renders the canonical HH:MM form used as the slot key.
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}
