package auth

import "github.com/legolocker/backend/internal/domain"

// AuthResult is returned by Register, LoginWithPassword and Refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	User         *domain.User
}
