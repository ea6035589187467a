// Package user implements the sync-account repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/legolocker/backend/internal/adapter/postgres"
	"github.com/legolocker/backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getByIDSQL = `
SELECT id, email, username, password_hash, created_at, updated_at
FROM users
WHERE id = $1`

// GetByID returns a user by primary key.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var u domain.User
	err := q.QueryRow(ctx, getByIDSQL, id).Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}

	return &u, nil
}

const getByEmailSQL = `
SELECT id, email, username, password_hash, created_at, updated_at
FROM users
WHERE email = $1`

// GetByEmail returns a user by email.
// Returns domain.ErrNotFound if no account uses that email — callers rely on
// this to fall back from sign-in to account creation.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var u domain.User
	err := q.QueryRow(ctx, getByEmailSQL, email).Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	return &u, nil
}

const createSQL = `
INSERT INTO users (id, email, username, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

// Create inserts a new user. Email and username uniqueness are enforced by
// DB constraints and surface as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx, createSQL,
		u.ID, u.Email, u.Username, u.PasswordHash, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID.String())
	}

	return u, nil
}

const deleteSQL = `DELETE FROM users WHERE id = $1`

// Delete removes a user and, via ON DELETE CASCADE, their refresh tokens.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "user", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
