package bootstrap

import (
	"fmt"

	"sala-agenda/internal/domain/timeline"
	"sala-agenda/internal/pkg/config"

	"go.uber.org/fx"
)

var ScheduleModule = fx.Module("schedule",
	fx.Provide(
		NewSchedule,
	),
)

// NewSchedule turns the configured service windows into the immutable day
// template every timeline render uses.
func NewSchedule(cfg config.Config) (timeline.Schedule, error) {
	parse := func(name, value string) (timeline.ClockTime, error) {
		t, err := timeline.ParseClockTime(value)
		if err != nil {
			return timeline.ClockTime{}, fmt.Errorf("invalid %s %q: %w", name, value, err)
		}
		return t, nil
	}

	lunchOpens, err := parse("SCHEDULE_LUNCH_OPENS", cfg.Schedule.LunchOpens)
	if err != nil {
		return timeline.Schedule{}, err
	}
	lunchCloses, err := parse("SCHEDULE_LUNCH_CLOSES", cfg.Schedule.LunchCloses)
	if err != nil {
		return timeline.Schedule{}, err
	}
	dinnerOpens, err := parse("SCHEDULE_DINNER_OPENS", cfg.Schedule.DinnerOpens)
	if err != nil {
		return timeline.Schedule{}, err
	}
	dinnerCloses, err := parse("SCHEDULE_DINNER_CLOSES", cfg.Schedule.DinnerCloses)
	if err != nil {
		return timeline.Schedule{}, err
	}

	return timeline.NewRestaurantDay(lunchOpens, lunchCloses, dinnerOpens, dinnerCloses, cfg.Schedule.SlotStep)
}
