//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"parking-allocator/internal/domain/allocation"
	"parking-allocator/internal/pkg/errs"
	"parking-allocator/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationGet(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &fakeConfigRepo{cfg: cfg(t, 10, 2)}
		uc := usecase.NewConfigurationUseCase(repo, testLogger())

		got, err := uc.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 10, got.TotalSpaces)
	})

	t.Run("missing configuration", func(t *testing.T) {
		repo := &fakeConfigRepo{getErr: errNotFound}
		uc := usecase.NewConfigurationUseCase(repo, testLogger())

		_, err := uc.Get(context.Background())
		assert.True(t, errs.Is(err, usecase.ErrConfigurationUnavailable))
	})
}

func TestConfigurationPut(t *testing.T) {
	t.Run("success: validates and persists", func(t *testing.T) {
		repo := &fakeConfigRepo{}
		uc := usecase.NewConfigurationUseCase(repo, testLogger())

		got, err := uc.Put(context.Background(), 12, 3, 4.5)
		require.NoError(t, err)
		assert.Equal(t, 12, got.TotalSpaces)
		assert.Equal(t, got, repo.cfg)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		uc := usecase.NewConfigurationUseCase(&fakeConfigRepo{}, testLogger())

		_, err := uc.Put(context.Background(), -1, 0, 5)
		assert.ErrorIs(t, err, allocation.ErrInvalidSpaceCount)

		_, err = uc.Put(context.Background(), 5, 6, 5)
		assert.ErrorIs(t, err, allocation.ErrReservedExceeds)
	})

	t.Run("save failure", func(t *testing.T) {
		uc := usecase.NewConfigurationUseCase(&fakeConfigRepo{putErr: errNotFound}, testLogger())

		_, err := uc.Put(context.Background(), 10, 2, 5)
		assert.Error(t, err)
	})
}
