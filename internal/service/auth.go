package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/account-service/internal/domain"
)

// Client-facing messages. Login deliberately reuses one message for an unknown
// email and a wrong password.
const (
	msgEmailExists        = "Email already exists"
	msgInvalidCredentials = "Invalid email or password"
	msgAccountInactive    = "Account is inactive"
	msgTokenRequired      = "Authentication token is required"
	msgTokenInvalid       = "Invalid or expired token"
	msgUserUnavailable    = "User not found or inactive"
	msgUserNotFound       = "User not found"
)

// AuthResult is returned by Register and Login.
type AuthResult struct {
	User  *domain.User
	Token string
}

// RegisterInput holds the fields needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthService handles registration, login and request authentication.
type AuthService struct {
	users     domain.UserRepository
	hasher    Hasher
	tokens    *TokenCodec
	dummyHash string
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, hasher Hasher, tokens *TokenCodec) *AuthService {
	// Compared against on unknown-email logins so they cost as much as a
	// wrong-password login.
	dummyHash, _ := hasher.Hash("account-service-timing-equaliser")
	return &AuthService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		dummyHash: dummyHash,
	}
}

// Register creates an active account and returns it with a session token.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	user, err := createUser(ctx, s.users, s.hasher, in)
	if err != nil {
		return nil, err
	}

	token, _, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, domain.Internal("issue token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies credentials and returns the account with a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_, _ = s.hasher.Verify(password, s.dummyHash)
			return nil, domain.Unauthorized(msgInvalidCredentials)
		}
		return nil, domain.Internal("get user by email", err)
	}

	if !user.IsActive {
		return nil, domain.Forbidden(msgAccountInactive)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, domain.Internal("verify password", fmt.Errorf("user %s: %w", user.ID, err))
	}
	if !ok {
		return nil, domain.Unauthorized(msgInvalidCredentials)
	}

	token, _, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, domain.Internal("issue token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Authenticate resolves an Authorization header value to the caller's
// identity. The user must still exist and be active; the identity itself
// comes from the token claims.
func (s *AuthService) Authenticate(ctx context.Context, authorization string) (domain.Identity, error) {
	token, ok := ExtractBearerToken(authorization)
	if !ok {
		return domain.Identity{}, domain.Unauthorized(msgTokenRequired)
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return domain.Identity{}, domain.Unauthorized(msgTokenInvalid)
	}

	if _, err := s.users.GetActiveByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Identity{}, domain.Unauthorized(msgUserUnavailable)
		}
		return domain.Identity{}, domain.Internal("get active user", err)
	}

	return domain.Identity{UserID: claims.UserID, Email: claims.Email}, nil
}

// CurrentUser loads the account behind an authenticated identity.
func (s *AuthService) CurrentUser(ctx context.Context, id domain.Identity) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound(msgUserNotFound)
		}
		return nil, domain.Internal("get user by id", err)
	}
	return user, nil
}

// createUser checks email uniqueness, hashes the password and persists an
// active user, in that order.
func createUser(ctx context.Context, users domain.UserRepository, hasher Hasher, in RegisterInput) (*domain.User, error) {
	_, err := users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, domain.Conflict(msgEmailExists)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, domain.Internal("get user by email", err)
	}

	hash, err := hasher.Hash(in.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrPasswordEmpty):
			return nil, domain.Validation("Validation failed", domain.FieldError{Field: "password", Message: "is required"})
		case errors.Is(err, ErrPasswordTooLong):
			return nil, domain.Validation("Validation failed", domain.FieldError{Field: "password", Message: "must be at most 72 bytes"})
		}
		return nil, domain.Internal("hash password", err)
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.Conflict(msgEmailExists)
		}
		return nil, domain.Internal("create user", err)
	}

	return user, nil
}
