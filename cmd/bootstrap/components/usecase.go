package components

import (
	"sala-agenda/internal/pkg/clock"
	"sala-agenda/internal/pkg/config"
	"sala-agenda/internal/usecase/commands"
	"sala-agenda/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewQuickReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTimelineQueries,
		queries.NewReservationQueries,
		queries.NewStaffQueries,
		NewCustomerSearchQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		commands.NewTokenValidator,
	),
)

func NewCustomerSearchQueries(
	cfg config.Config,
	customers queries.CustomerReadStore,
	reservations queries.ReservationReadStore,
) queries.CustomerSearchQueries {
	return queries.NewCustomerSearchQueries(
		customers,
		reservations,
		cfg.Composer.MinQueryLength,
		cfg.Composer.MaxSuggestions,
	)
}
