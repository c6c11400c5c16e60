package ports

import (
	"context"
	"time"

	"github.com/panelhub/user-service/internal/core/domain"
)

// ListUsersFilter carries the optional predicates for listing users.
// All set fields combine with logical AND; the zero value matches everything.
type ListUsersFilter struct {
	Role     string // optional: exact role match
	IsActive *bool  // optional: filter by activity flag
	Search   string // optional: case-insensitive substring on username OR email
}

// UserPatch holds the fields staged for a partial update. Nil pointers are
// left untouched in the store; UpdatedAt is always written.
type UserPatch struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Role         *string
	IsActive     *bool
	UpdatedAt    time.Time
}

// UserRepository defines persistence operations for user records.
// Lookup methods return domain.ErrUserNotFound when no record matches;
// Insert and Update return domain.ErrUserExists on a username/email
// uniqueness violation.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByRole(ctx context.Context, role string) ([]*domain.User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id int64, patch UserPatch) (*domain.User, error)
	// Delete reports whether a record existed and was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
