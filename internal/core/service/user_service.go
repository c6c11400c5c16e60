package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/panelhub/user-service/internal/core/domain"
	"github.com/panelhub/user-service/internal/core/ports"
)

// UserService implements the account lifecycle use-cases.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

// CreateUser hashes the password, inserts the record with is_active=true and
// returns its safe projection. A username/email collision surfaces as
// domain.ErrUserExists.
func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.SafeUser, error) {
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("role", created.Role).Msg("user created")
	return created.Safe(), nil
}

// GetUserByID returns the safe projection, or (nil, nil) when no record has
// the given id.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*domain.SafeUser, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user.Safe(), nil
}

// GetUsers returns safe projections of every record matching filter.
// Ordering is store-defined.
func (s *UserService) GetUsers(ctx context.Context, filter ports.ListUsersFilter) ([]*domain.SafeUser, error) {
	users, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return safeAll(users), nil
}

// GetUsersByRole returns safe projections for an exact role match, active
// and inactive alike.
func (s *UserService) GetUsersByRole(ctx context.Context, role string) ([]*domain.SafeUser, error) {
	users, err := s.repo.FindByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	return safeAll(users), nil
}

// UpdateUser applies the staged fields to an existing record. A missing
// target yields (nil, nil) with no side effects; a username/email collision
// surfaces as domain.ErrUserExists.
func (s *UserService) UpdateUser(ctx context.Context, input ports.UpdateUserInput) (*domain.SafeUser, error) {
	if _, err := s.repo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	patch := ports.UserPatch{
		Username:  input.Username,
		Email:     input.Email,
		Role:      input.Role,
		IsActive:  input.IsActive,
		UpdatedAt: time.Now().UTC(),
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		patch.PasswordHash = &hash
	}

	updated, err := s.repo.Update(ctx, input.ID, patch)
	if err != nil {
		// Deleted between lookup and update: same answer as not found upfront.
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	s.logger.Info().Int64("user_id", updated.ID).Msg("user updated")
	return updated.Safe(), nil
}

// DeleteUser removes the record and reports whether one existed. The delete
// is irreversible; there is no soft-delete state.
func (s *UserService) DeleteUser(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Info().Int64("user_id", id).Msg("user deleted")
	}
	return deleted, nil
}

func safeAll(users []*domain.User) []*domain.SafeUser {
	out := make([]*domain.SafeUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Safe())
	}
	return out
}
