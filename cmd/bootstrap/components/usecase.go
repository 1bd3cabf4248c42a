package components

import (
	"parking-allocator/internal/pkg/clock"
	"parking-allocator/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewRequestsUseCase,
		usecase.NewReservationsUseCase,
		usecase.NewConfigurationUseCase,
		usecase.NewRequestUpdater,
		usecase.NewAllocationNotifier,
		func(uc usecase.AuthUseCase) usecase.TokenValidator { return uc },
	),
)
