package components

import (
	repo_impl "parking-allocator/internal/infra/repository"
	"parking-allocator/internal/infra/runlock"
	"parking-allocator/internal/pkg/config"
	"parking-allocator/internal/usecase"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewRequestRepository,
			fx.As(new(usecase.RequestRepository)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(usecase.ReservationRepository)),
		),
		fx.Annotate(
			repo_impl.NewConfigurationRepository,
			fx.As(new(usecase.ConfigurationRepository)),
		),
		fx.Annotate(
			repo_impl.NewScheduleRepository,
			fx.As(new(usecase.ScheduleRepository)),
		),
		fx.Annotate(
			NewRunLock,
			fx.As(new(usecase.RunLock)),
		),
	),
)

func NewRunLock(client *redis.Client, cfg config.Config) *runlock.RedisRunLock {
	return runlock.New(client, cfg.Allocation.RunLockTTL)
}
