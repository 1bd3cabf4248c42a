//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"parking-allocator/internal/domain/allocation"
	"parking-allocator/internal/domain/request"
	"parking-allocator/internal/domain/reservation"
	"parking-allocator/internal/domain/schedule"
	"parking-allocator/internal/domain/user"
	"parking-allocator/internal/infra"
	"parking-allocator/internal/infra/db"
	"parking-allocator/internal/infra/repository"
	"parking-allocator/internal/pkg/config"
	"parking-allocator/internal/pkg/workcal"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	containerOnce sync.Once
	container     testcontainers.Container

	testDBUser     = "test"
	testDBPassword = "testpass"
)

func startPostgresOnce(t *testing.T) (host, port string) {
	t.Helper()
	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testDBUser,
				"POSTGRES_PASSWORD": testDBPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
			Cmd:   []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off"},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testDBUser, testDBPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
		}
		var err error
		container, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "failed to start postgres container")
	})

	ctx := context.Background()
	mappedPort, err := container.MappedPort(ctx, nat.Port("5432/tcp"))
	require.NoError(t, err)
	h, err := container.Host(ctx)
	require.NoError(t, err)
	return h, mappedPort.Port()
}

// setupPool gives each test its own database with the schema applied.
func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	host, port := startPostgresOnce(t)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	adminCfg := config.DBConfig{
		Host: host, Port: port,
		User: testDBUser, Password: testDBPassword,
		DBName: "postgres", SSLMode: "disable", TimeZone: "Europe/London",
	}
	adminPool, adminCleanup, err := db.Connect(adminCfg)
	require.NoError(t, err)
	defer adminCleanup()

	dbName := "testdb_" + uuid.New().String()[:8]
	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err)

	cfg := adminCfg
	cfg.DBName = dbName
	pool, cleanup, err := db.Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	_, err = pool.Exec(ctx, repository.Schema)
	require.NoError(t, err)
	return pool
}

func seedUser(t *testing.T, pool *pgxpool.Pool, email string, teamLeader bool) uuid.UUID {
	t.Helper()
	id := uuid.New()
	role := "employee"
	if teamLeader {
		role = "team_leader"
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, first_name, last_name, role, is_team_leader)
		 VALUES ($1, $2, 'x', 'Test', 'User', $3, $4)`,
		id, email, role, teamLeader)
	require.NoError(t, err)
	return id
}

func TestRequestRepository(t *testing.T) {
	pool := setupPool(t)
	repo := repository.NewRequestRepository(pool)
	ctx := context.Background()

	alice := seedUser(t, pool, "alice@example.com", false)
	bob := seedUser(t, pool, "bob@example.com", false)

	monday := workcal.MustParseDate("2025-09-01")
	tuesday := workcal.MustParseDate("2025-09-02")

	require.NoError(t, repo.Upsert(ctx, []request.Request{
		request.New(alice, monday, request.StatusPending),
		request.New(bob, monday, request.StatusPending),
		request.New(alice, tuesday, request.StatusPending),
	}))

	t.Run("finds ordered by date then user", func(t *testing.T) {
		got, err := repo.FindInRange(ctx, monday, tuesday)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, monday, got[0].Date)
		assert.Equal(t, monday, got[1].Date)
		assert.Equal(t, tuesday, got[2].Date)
	})

	t.Run("filters by user", func(t *testing.T) {
		got, err := repo.FindByUserInRange(ctx, bob, monday, tuesday)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, bob, got[0].UserID)
	})

	t.Run("upsert overwrites status", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, []request.Request{
			request.New(alice, monday, request.StatusAllocated),
		}))
		got, err := repo.FindByUserInRange(ctx, alice, monday, monday)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, request.StatusAllocated, got[0].Status)
	})
}

func TestReservationRepository(t *testing.T) {
	pool := setupPool(t)
	repo := repository.NewReservationRepository(pool)
	ctx := context.Background()

	alice := seedUser(t, pool, "alice@example.com", false)
	bob := seedUser(t, pool, "bob@example.com", false)

	monday := workcal.MustParseDate("2025-09-08")
	friday := workcal.MustParseDate("2025-09-12")
	outside := workcal.MustParseDate("2025-09-15")

	require.NoError(t, repo.Replace(ctx, monday, friday, []reservation.Reservation{
		reservation.New(alice, monday),
	}))
	require.NoError(t, repo.Replace(ctx, outside, outside, []reservation.Reservation{
		reservation.New(bob, outside),
	}))

	t.Run("replace swaps only the given range", func(t *testing.T) {
		require.NoError(t, repo.Replace(ctx, monday, friday, []reservation.Reservation{
			reservation.New(bob, friday),
		}))

		inRange, err := repo.FindInRange(ctx, monday, friday)
		require.NoError(t, err)
		require.Len(t, inRange, 1)
		assert.Equal(t, reservation.New(bob, friday), inRange[0])

		untouched, err := repo.FindInRange(ctx, outside, outside)
		require.NoError(t, err)
		assert.Len(t, untouched, 1)
	})
}

func TestUserRepository(t *testing.T) {
	pool := setupPool(t)
	repo := repository.NewUserRepository(pool)
	ctx := context.Background()

	aliceID := seedUser(t, pool, "alice@example.com", false)
	seedUser(t, pool, "lead@example.com", true)

	t.Run("finds all active users", func(t *testing.T) {
		users, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("finds team leaders only", func(t *testing.T) {
		leaders, err := repo.FindTeamLeaders(ctx)
		require.NoError(t, err)
		require.Len(t, leaders, 1)
		assert.True(t, leaders[0].IsTeamLeader)
	})

	t.Run("finds by id", func(t *testing.T) {
		u, err := repo.FindByID(ctx, aliceID)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", u.Email.Value())
	})

	t.Run("missing user maps to not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("finds by email with password hash", func(t *testing.T) {
		email, err := user.NewEmail("alice@example.com")
		require.NoError(t, err)
		u, hash, err := repo.FindByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, aliceID, u.ID)
		assert.Equal(t, "x", hash)
	})
}

func TestConfigurationRepository(t *testing.T) {
	pool := setupPool(t)
	repo := repository.NewConfigurationRepository(pool)
	ctx := context.Background()

	t.Run("missing configuration maps to not found", func(t *testing.T) {
		_, err := repo.Get(ctx)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("put then get round-trips, put overwrites", func(t *testing.T) {
		first, err := allocation.NewConfig(10, 2, 5.0)
		require.NoError(t, err)
		require.NoError(t, repo.Put(ctx, first))

		second, err := allocation.NewConfig(12, 3, 4.5)
		require.NoError(t, err)
		require.NoError(t, repo.Put(ctx, second))

		got, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, second, got)
	})
}

func TestScheduleRepository(t *testing.T) {
	pool := setupPool(t)
	repo := repository.NewScheduleRepository(pool)
	ctx := context.Background()

	nextRun := time.Date(2025, time.September, 1, 11, 0, 0, 0, time.UTC)

	t.Run("update inserts then overwrites", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, schedule.Schedule{
			Task: schedule.TaskAllocationRun, NextRun: nextRun,
		}))
		require.NoError(t, repo.Update(ctx, schedule.Schedule{
			Task: schedule.TaskAllocationRun, NextRun: nextRun.Add(time.Hour),
		}))

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.True(t, all[0].NextRun.Equal(nextRun.Add(time.Hour)))
	})

	t.Run("rows for removed tasks are skipped", func(t *testing.T) {
		_, err := pool.Exec(ctx,
			`INSERT INTO schedules (task, next_run) VALUES ('retired_task', NOW())`)
		require.NoError(t, err)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}
