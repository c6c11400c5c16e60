package ports

import (
	"context"

	"github.com/panelhub/user-service/internal/core/domain"
)

// DemoService provisions the three fixed demo accounts.
type DemoService interface {
	// SeedDemoUsers ensures every demo account exists and returns their safe
	// projections in dataset order. Already-seeded accounts are left as-is.
	SeedDemoUsers(ctx context.Context) ([]*domain.SafeUser, error)
	// DemoUsers returns the plaintext demo specifications for display in the
	// client's login hints. Never merged with live records.
	DemoUsers() []domain.DemoSpec
}
