package usecase

import (
	"context"
	"log/slog"

	"parking-allocator/internal/domain/allocation"
	"parking-allocator/internal/pkg/errs"
)

type ConfigurationUseCase interface {
	Get(ctx context.Context) (allocation.Config, error)
	Put(ctx context.Context, totalSpaces, shortLeadTimeSpaces int, nearbyDistanceKm float64) (allocation.Config, error)
}

type configurationUseCaseImpl struct {
	configRepo ConfigurationRepository
	logger     *slog.Logger
}

func NewConfigurationUseCase(configRepo ConfigurationRepository, logger *slog.Logger) ConfigurationUseCase {
	return &configurationUseCaseImpl{configRepo: configRepo, logger: logger}
}

func (c *configurationUseCaseImpl) Get(ctx context.Context) (allocation.Config, error) {
	cfg, err := c.configRepo.Get(ctx)
	if err != nil {
		return allocation.Config{}, errs.Mark(err, ErrConfigurationUnavailable)
	}
	return cfg, nil
}

func (c *configurationUseCaseImpl) Put(ctx context.Context, totalSpaces, shortLeadTimeSpaces int, nearbyDistanceKm float64) (allocation.Config, error) {
	cfg, err := allocation.NewConfig(totalSpaces, shortLeadTimeSpaces, nearbyDistanceKm)
	if err != nil {
		return allocation.Config{}, err
	}
	if err := c.configRepo.Put(ctx, cfg); err != nil {
		return allocation.Config{}, errs.Wrap(err, "failed to save configuration")
	}
	c.logger.Info("configuration updated",
		"totalSpaces", cfg.TotalSpaces,
		"shortLeadTimeSpaces", cfg.ShortLeadTimeSpaces,
		"nearbyDistanceKm", cfg.NearbyDistanceKm)
	return cfg, nil
}
