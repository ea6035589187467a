package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/legolocker/backend/internal/auth"
	"github.com/legolocker/backend/internal/domain"
)

// Refresh performs token rotation and returns new access/refresh tokens.
// The revoke of the old token and the insert of its replacement run in a
// single transaction so a crash can not leave the user without any token.
// If the refresh token is unknown (revoked or reused), logs a warning and
// returns ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash := auth.HashToken(input.RefreshToken)

	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Token not found (reuse detection)
			s.log.WarnContext(ctx, "refresh token reuse attempted")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if !token.Valid(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// User deleted
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", token.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tokens.RevokeByID(txCtx, token.ID); err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}

		issued, err := s.issueTokens(txCtx, user)
		if err != nil {
			return fmt.Errorf("issue tokens: %w", err)
		}
		result = issued
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}

	return result, nil
}
