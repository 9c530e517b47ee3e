package components

import (
	"sala-agenda/internal/infra/cache"
	"sala-agenda/internal/infra/db"
	"sala-agenda/internal/infra/readstore"
	"sala-agenda/internal/infra/writerepo"
	"sala-agenda/internal/pkg/config"
	"sala-agenda/internal/usecase/commands"
	"sala-agenda/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		NewTxStarter,
		NewTimelineCache,
		fx.Annotate(
			writerepo.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			writerepo.NewCustomerRepository,
			fx.As(new(commands.CustomerRepository)),
		),
		fx.Annotate(
			writerepo.NewIdempotencyRepository,
			fx.As(new(commands.IdempotencyRepository)),
		),
		fx.Annotate(
			writerepo.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		fx.Annotate(
			writerepo.NewStaffRepository,
			fx.As(new(commands.StaffRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		fx.Annotate(
			readstore.NewStaffReadStore,
			fx.As(new(queries.StaffReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewTxStarter(pool *pgxpool.Pool) commands.TxStarter {
	return pool
}

// NewTimelineCache serves both sides: the read path consults it, the write
// path invalidates it after a successful insert.
func NewTimelineCache(cfg config.Config, rdb *redis.Client) (*cache.TimelineCache, queries.TimelineCache, commands.TimelineInvalidator) {
	c := cache.NewTimelineCache(rdb, cfg.Redis.TimelineTTL)
	return c, c, c
}
