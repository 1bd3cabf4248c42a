package repository

import (
	"context"
	"errors"

	"parking-allocator/internal/domain/allocation"
	"parking-allocator/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The allocation configuration is a single row. Fixing the id makes Put an
// idempotent upsert and keeps a second row from ever appearing.
const configurationRowID = 1

type ConfigurationRepository struct {
	pool *pgxpool.Pool
}

func NewConfigurationRepository(pool *pgxpool.Pool) *ConfigurationRepository {
	return &ConfigurationRepository{pool: pool}
}

func (r *ConfigurationRepository) Get(ctx context.Context) (allocation.Config, error) {
	var (
		totalSpaces         int
		shortLeadTimeSpaces int
		nearbyDistanceKm    float64
	)
	err := r.pool.QueryRow(ctx,
		`SELECT total_spaces, short_lead_time_spaces, nearby_distance_km
		   FROM configuration WHERE id = $1`, configurationRowID).
		Scan(&totalSpaces, &shortLeadTimeSpaces, &nearbyDistanceKm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return allocation.Config{}, infra.WrapRepoErr("configuration not found", err, infra.KindNotFound)
		}
		return allocation.Config{}, infra.WrapRepoErr("failed to load configuration", err)
	}

	cfg, err := allocation.NewConfig(totalSpaces, shortLeadTimeSpaces, nearbyDistanceKm)
	if err != nil {
		return allocation.Config{}, infra.WrapRepoErr("invalid configuration in storage", err)
	}
	return cfg, nil
}

func (r *ConfigurationRepository) Put(ctx context.Context, cfg allocation.Config) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO configuration (id, total_spaces, short_lead_time_spaces, nearby_distance_km)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id)
		 DO UPDATE SET total_spaces = EXCLUDED.total_spaces,
		               short_lead_time_spaces = EXCLUDED.short_lead_time_spaces,
		               nearby_distance_km = EXCLUDED.nearby_distance_km,
		               updated_at = NOW()`,
		configurationRowID, cfg.TotalSpaces, cfg.ShortLeadTimeSpaces, cfg.NearbyDistanceKm)
	if err != nil {
		return infra.WrapRepoErr("failed to save configuration", err)
	}
	return nil
}
