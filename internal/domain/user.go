package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the remote-sync backend. PasswordHash is the bcrypt
// hash of the account password; it never leaves the persistence and auth
// layers.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is a stored refresh token. Only the SHA-256 hash of the raw
// token is persisted.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// Valid reports whether the token can still be exchanged.
func (t RefreshToken) Valid(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
