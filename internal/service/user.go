package service

import (
	"context"
	"errors"

	"github.com/msomdec/account-service/internal/domain"
)

// UpdateUserInput carries a partial update. Nil fields, and empty strings,
// leave the stored value untouched.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	IsActive *bool
}

// UserService handles CRUD on user records.
type UserService struct {
	users  domain.UserRepository
	hasher Hasher
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository, hasher Hasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, domain.Internal("list users", err)
	}
	return users, nil
}

// Get returns a single user.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound(msgUserNotFound)
		}
		return nil, domain.Internal("get user", err)
	}
	return user, nil
}

// Create adds an active user without issuing a token.
func (s *UserService) Create(ctx context.Context, in RegisterInput) (*domain.User, error) {
	return createUser(ctx, s.users, s.hasher, in)
}

// Update applies a partial update. A changed email must not belong to
// another user.
func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != "" && *in.Email != user.Email {
		_, err := s.users.GetByEmail(ctx, *in.Email)
		switch {
		case err == nil:
			return nil, domain.Conflict(msgEmailExists)
		case !errors.Is(err, domain.ErrNotFound):
			return nil, domain.Internal("get user by email", err)
		}
		user.Email = *in.Email
	}
	if in.Name != nil && *in.Name != "" {
		user.Name = *in.Name
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}

	if err := s.users.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			return nil, domain.Conflict(msgEmailExists)
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.NotFound(msgUserNotFound)
		}
		return nil, domain.Internal("update user", err)
	}
	return user, nil
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFound(msgUserNotFound)
		}
		return domain.Internal("delete user", err)
	}
	return nil
}
