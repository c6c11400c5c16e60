package service

import (
	"context"
	"errors"
	"strings"

	"github.com/panelhub/user-service/internal/core/domain"
	"github.com/panelhub/user-service/internal/core/ports"
)

// stubUserRepo is an in-memory UserRepository mirroring the store's
// uniqueness and filter contracts.
type stubUserRepo struct {
	users   map[int64]*domain.User
	nextID  int64
	updates int // number of successful Update calls
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByRole(_ context.Context, role string) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) List(_ context.Context, filter ports.ListUsersFilter) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.IsActive != nil && u.IsActive != *filter.IsActive {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(u.Username), needle) &&
				!strings.Contains(strings.ToLower(u.Email), needle) {
				continue
			}
		}
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.nextID++
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) Update(_ context.Context, id int64, patch ports.UserPatch) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	for otherID, other := range r.users {
		if otherID == id {
			continue
		}
		if patch.Username != nil && other.Username == *patch.Username {
			return nil, domain.ErrUserExists
		}
		if patch.Email != nil && other.Email == *patch.Email {
			return nil, domain.ErrUserExists
		}
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.IsActive != nil {
		u.IsActive = *patch.IsActive
	}
	u.UpdatedAt = patch.UpdatedAt
	r.updates++
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

// failingUserRepo returns a fixed error from every method. Used to exercise
// the unexpected-failure paths.
type failingUserRepo struct {
	err error
}

var errStoreDown = errors.New("store unavailable")

func (r *failingUserRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, r.err
}
func (r *failingUserRepo) FindByID(context.Context, int64) (*domain.User, error) {
	return nil, r.err
}
func (r *failingUserRepo) FindByRole(context.Context, string) ([]*domain.User, error) {
	return nil, r.err
}
func (r *failingUserRepo) List(context.Context, ports.ListUsersFilter) ([]*domain.User, error) {
	return nil, r.err
}
func (r *failingUserRepo) Insert(context.Context, *domain.User) (*domain.User, error) {
	return nil, r.err
}
func (r *failingUserRepo) Update(context.Context, int64, ports.UserPatch) (*domain.User, error) {
	return nil, r.err
}
func (r *failingUserRepo) Delete(context.Context, int64) (bool, error) {
	return false, r.err
}
