package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/panelhub/user-service/internal/core/domain"
	"github.com/panelhub/user-service/internal/core/ports"
)

// AuthService implements the login flow: lookup, active check, verify.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, logger: logger}
}

// Login runs the authentication state machine and always terminates in a
// single result. Email comparison is byte-exact; no normalization. Store or
// hasher failures are logged here and collapse into a generic failure
// result — Login never returns an error to the transport.
func (s *AuthService) Login(ctx context.Context, email, password string) *ports.LoginResult {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return &ports.LoginResult{Success: false, Message: ports.MsgInvalidCredentials}
		}
		s.logger.Error().Err(err).Msg("login lookup failed")
		return &ports.LoginResult{Success: false, Message: ports.MsgLoginServerError}
	}

	if !user.IsActive {
		return &ports.LoginResult{Success: false, Message: ports.MsgAccountDeactivated}
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return &ports.LoginResult{Success: false, Message: ports.MsgInvalidCredentials}
	}

	s.logger.Info().Int64("user_id", user.ID).Str("role", user.Role).Msg("login successful")
	return &ports.LoginResult{Success: true, User: user.Safe(), Message: ports.MsgLoginSuccess}
}
