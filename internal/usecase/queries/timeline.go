package queries

import (
	"context"
	"log/slog"
	"time"

	"sala-agenda/internal/domain/timeline"
	"sala-agenda/internal/pkg/errs"
)

var ErrInvalidDate = errs.New("invalid timeline date")

type TimelineQueries interface {
	GetDay(ctx context.Context, date string) (*TimelineDayView, error)
}

type timelineQueriesImpl struct {
	schedule  timeline.Schedule
	readStore ReservationReadStore
	cache     TimelineCache
}

func NewTimelineQueries(schedule timeline.Schedule, readStore ReservationReadStore, cache TimelineCache) TimelineQueries {
	return &timelineQueriesImpl{
		schedule:  schedule,
		readStore: readStore,
		cache:     cache,
	}
}

// GetDay renders the slot grid for one date with every stored reservation
// bucketed into its slot. Cache-aside: a cache failure is only a miss.
func (q *timelineQueriesImpl) GetDay(ctx context.Context, date string) (*TimelineDayView, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	if cached, err := q.cache.GetDay(ctx, date); err != nil {
		slog.Warn("timeline cache read failed", "date", date, "error", err.Error())
	} else if cached != nil {
		return cached, nil
	}

	rows, err := q.readStore.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	view := buildDayView(q.schedule, date, rows)

	if err := q.cache.SetDay(ctx, view); err != nil {
		slog.Warn("timeline cache write failed", "date", date, "error", err.Error())
	}

	return view, nil
}

func buildDayView(schedule timeline.Schedule, date string, rows []DayReservationRow) *TimelineDayView {
	bookings := make([]timeline.Booking, len(rows))
	for i, r := range rows {
		bookings[i] = timeline.Booking{
			ID:        r.ID,
			RawTime:   r.RawTime,
			Name:      r.DisplayName,
			PartySize: r.PartySize,
			Status:    r.Status,
			Phone:     r.Phone,
		}
	}

	day := timeline.BuildDay(schedule, date, bookings)

	slots := make([]TimelineSlotView, len(day.Slots))
	for i, s := range day.Slots {
		reservations := make([]TimelineReservationView, len(s.Bookings))
		for j, b := range s.Bookings {
			reservations[j] = TimelineReservationView{
				ID:          b.ID,
				DisplayName: b.Name,
				PartySize:   b.PartySize,
				Status:      b.Status,
			}
		}
		slots[i] = TimelineSlotView{
			Time:         s.Key(),
			Kind:         string(s.Kind),
			Bookable:     s.Bookable,
			Reservations: reservations,
		}
	}

	return &TimelineDayView{
		Date:           date,
		Slots:          slots,
		SkippedRecords: day.Skipped,
	}
}
