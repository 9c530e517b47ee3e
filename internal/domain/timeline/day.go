package timeline

import (
	"log/slog"

	"github.com/google/uuid"
)

// Booking is the slice of a stored reservation the timeline needs. RawTime is
// the hora_reserva value exactly as stored; it is canonicalized here and
// nowhere else, so slot keys and booking keys are always comparable.
type Booking struct {
	ID        uuid.UUID
	RawTime   string
	Name      string
	PartySize int32
	Status    string
	Phone     string
}

type DaySlot struct {
	Slot
	Bookings []Booking
}

// Day is the rendered timeline for one calendar date.
type Day struct {
	Date    string
	Slots   []DaySlot
	Skipped int // bookings dropped because their stored time failed to canonicalize
}

// BuildDay buckets each booking into the slot whose canonical time equals the
// booking's canonicalized RawTime. A booking whose time cannot be
// canonicalized is skipped with a data-quality warning; it never attaches to
// a default slot and never aborts the rest of the grid.
func BuildDay(schedule Schedule, date string, bookings []Booking) Day {
	slots := schedule.Slots()

	// Pre-index by canonical key so bucketing is O(slots + bookings).
	index := make(map[string]int, len(slots))
	daySlots := make([]DaySlot, len(slots))
	for i, s := range slots {
		index[s.Key()] = i
		daySlots[i] = DaySlot{Slot: s}
	}

	skipped := 0
	for _, b := range bookings {
		ct, err := ParseClockTime(b.RawTime)
		if err != nil {
			skipped++
			slog.Warn("skipping reservation with unparseable time",
				"reservation_id", b.ID,
				"date", date,
				"raw_time", b.RawTime)
			continue
		}
		if i, ok := index[ct.String()]; ok {
			daySlots[i].Bookings = append(daySlots[i].Bookings, b)
		}
	}

	return Day{Date: date, Slots: daySlots, Skipped: skipped}
}
