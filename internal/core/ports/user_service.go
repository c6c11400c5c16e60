package ports

import (
	"context"

	"github.com/panelhub/user-service/internal/core/domain"
)

// CreateUserInput carries the data for a new account. Shape validation
// (lengths, email syntax, role membership) happens at the API boundary;
// the service trusts it and surfaces only store-level conflicts.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput stages a partial update; nil fields are not touched.
type UpdateUserInput struct {
	ID       int64
	Username *string
	Email    *string
	Password *string
	Role     *string
	IsActive *bool
}

// UserService defines the account lifecycle use-cases.
//
// GetUserByID and UpdateUser return (nil, nil) when the target id does not
// exist — absence is an answer, not an error. Conflicts surface as
// domain.ErrUserExists.
type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.SafeUser, error)
	GetUserByID(ctx context.Context, id int64) (*domain.SafeUser, error)
	GetUsers(ctx context.Context, filter ListUsersFilter) ([]*domain.SafeUser, error)
	GetUsersByRole(ctx context.Context, role string) ([]*domain.SafeUser, error)
	UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.SafeUser, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
}
