package repository

import (
	"context"
	"errors"

	"parking-allocator/internal/domain/user"
	"parking-allocator/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, email, first_name, last_name, role, commute_distance_km, is_team_leader, is_deleted`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]user.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE NOT is_deleted ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find users", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *UserRepository) FindTeamLeaders(ctx context.Context) ([]user.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE NOT is_deleted AND is_team_leader ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find team leaders", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1 AND NOT is_deleted`, id)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, string, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+`, password_hash FROM users WHERE email = $1 AND NOT is_deleted`,
		email.Value())

	var (
		raw  userRow
		hash string
	)
	if err := row.Scan(&raw.id, &raw.email, &raw.firstName, &raw.lastName,
		&raw.role, &raw.commuteDistanceKm, &raw.isTeamLeader, &raw.isDeleted, &hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	u, err := raw.toDomain()
	if err != nil {
		return nil, "", infra.WrapRepoErr("invalid user in storage", err)
	}
	return &u, hash, nil
}

type userRow struct {
	id                uuid.UUID
	email             string
	firstName         string
	lastName          string
	role              string
	commuteDistanceKm *float64
	isTeamLeader      bool
	isDeleted         bool
}

func (row userRow) toDomain() (user.User, error) {
	email, err := user.NewEmail(row.email)
	if err != nil {
		return user.User{}, err
	}
	role, err := user.NewRole(row.role)
	if err != nil {
		return user.User{}, err
	}
	return user.User{
		ID:                row.id,
		Email:             email,
		FirstName:         row.firstName,
		LastName:          row.lastName,
		Role:              role,
		CommuteDistanceKm: row.commuteDistanceKm,
		IsTeamLeader:      row.isTeamLeader,
		IsDeleted:         row.isDeleted,
	}, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var raw userRow
	if err := row.Scan(&raw.id, &raw.email, &raw.firstName, &raw.lastName,
		&raw.role, &raw.commuteDistanceKm, &raw.isTeamLeader, &raw.isDeleted); err != nil {
		return nil, err
	}
	u, err := raw.toDomain()
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func scanUsers(rows pgx.Rows) ([]user.User, error) {
	var out []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		out = append(out, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}
	return out, nil
}
