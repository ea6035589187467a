// Package token implements the refresh-token repository using PostgreSQL.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	postgres "github.com/legolocker/backend/internal/adapter/postgres"
	"github.com/legolocker/backend/internal/domain"
)

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const createSQL = `
INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5)`

// Create stores a refresh token hash.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	_, err := q.Exec(ctx, createSQL, t.ID, t.UserID, t.TokenHash, t.ExpiresAt, t.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "refresh_token", t.ID.String())
	}

	return nil
}

const getByHashSQL = `
SELECT id, user_id, token_hash, expires_at, revoked_at, created_at
FROM refresh_tokens
WHERE token_hash = $1`

// GetByHash returns a token row by its hash.
// Returns domain.ErrNotFound if no such token was ever issued.
func (r *Repo) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var t domain.RefreshToken
	err := q.QueryRow(ctx, getByHashSQL, hash).Scan(
		&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.RevokedAt, &t.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", hash)
	}

	return &t, nil
}

const revokeByIDSQL = `
UPDATE refresh_tokens SET revoked_at = now() WHERE id = $1 AND revoked_at IS NULL`

// RevokeByID marks one token as revoked.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, revokeByIDSQL, id); err != nil {
		return postgres.MapError(err, "refresh_token", id.String())
	}

	return nil
}

const revokeAllByUserSQL = `
UPDATE refresh_tokens SET revoked_at = now() WHERE user_id = $1 AND revoked_at IS NULL`

// RevokeAllByUser revokes every live token of a user (logout).
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, revokeAllByUserSQL, userID); err != nil {
		return postgres.MapError(err, "refresh_token", userID.String())
	}

	return nil
}

const deleteExpiredSQL = `
DELETE FROM refresh_tokens WHERE expires_at < now() OR revoked_at IS NOT NULL`

// DeleteExpired removes expired and revoked tokens. Returns the number of
// rows deleted.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteExpiredSQL)
	if err != nil {
		return 0, fmt.Errorf("delete expired tokens: %w", err)
	}

	return int(tag.RowsAffected()), nil
}
