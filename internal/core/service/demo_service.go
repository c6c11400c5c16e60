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

// DemoService provisions the fixed demo accounts.
type DemoService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewDemoService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *DemoService {
	return &DemoService{repo: repo, hasher: hasher, logger: logger}
}

// SeedDemoUsers ensures all three demo accounts exist and returns their safe
// projections in dataset order. Seeding is insert-first: a uniqueness
// conflict means another caller (or an earlier run) won the race, so the
// existing record is fetched and returned untouched, even if its stored
// fields have since diverged from the spec.
func (s *DemoService) SeedDemoUsers(ctx context.Context) ([]*domain.SafeUser, error) {
	specs := domain.DemoSpecs()
	out := make([]*domain.SafeUser, 0, len(specs))
	for _, spec := range specs {
		user, err := s.ensure(ctx, spec)
		if err != nil {
			return nil, fmt.Errorf("seed demo user %s: %w", spec.Email, err)
		}
		out = append(out, user.Safe())
	}
	return out, nil
}

// DemoUsers returns the plaintext demo specifications. Reference data only;
// it is never written to the store.
func (s *DemoService) DemoUsers() []domain.DemoSpec {
	return domain.DemoSpecs()
}

func (s *DemoService) ensure(ctx context.Context, spec domain.DemoSpec) (*domain.User, error) {
	hash, err := s.hasher.Hash(spec.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.repo.Insert(ctx, &domain.User{
		Username:     spec.Username,
		Email:        spec.Email,
		PasswordHash: hash,
		Role:         spec.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err == nil {
		s.logger.Info().Str("email", spec.Email).Str("role", spec.Role).Msg("demo user seeded")
		return created, nil
	}
	if !errors.Is(err, domain.ErrUserExists) {
		return nil, err
	}

	existing, err := s.repo.FindByEmail(ctx, spec.Email)
	if err != nil {
		return nil, err
	}
	return existing, nil
}
