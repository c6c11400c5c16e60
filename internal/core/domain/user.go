package domain

import (
	"errors"
	"time"
)

// Role values a user account can hold. Roles gate the web client's UI only;
// this service reports them but does not enforce permissions.
const (
	RoleAdmin    = "admin"
	RoleReseller = "reseller"
	RoleUser     = "user"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username or email already taken")
var ErrInvalidRole = errors.New("invalid role")

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleReseller || role == RoleUser
}

// User is the sole persisted entity. PasswordHash never leaves the
// repository/hasher boundary; everything returned to callers is a SafeUser.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SafeUser is the User entity minus the password hash.
type SafeUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Safe projects the user into its externally visible form.
func (u *User) Safe() *SafeUser {
	if u == nil {
		return nil
	}
	return &SafeUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
