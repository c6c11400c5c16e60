package ports

import (
	"context"

	"github.com/panelhub/user-service/internal/core/domain"
)

// Login outcome messages. Unknown email and wrong password share one message
// so a caller cannot probe which field was wrong; the deactivated message is
// distinct by design.
const (
	MsgLoginSuccess       = "Login successful"
	MsgInvalidCredentials = "Invalid email or password"
	MsgAccountDeactivated = "Account is deactivated"
	MsgLoginServerError   = "Login failed due to server error"
)

// LoginResult is the single terminal outcome of a login attempt. Failures
// are data, never errors: the transport renders the result as-is.
type LoginResult struct {
	Success bool             `json:"success"`
	User    *domain.SafeUser `json:"user,omitempty"`
	Message string           `json:"message"`
}

// AuthService authenticates users by email and password.
type AuthService interface {
	Login(ctx context.Context, email, password string) *LoginResult
}
