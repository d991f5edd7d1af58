// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	"recipe_backend/internal/apperr"
	"recipe_backend/internal/feature/auth/domain"
	"recipe_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 6

	// dummyHash keeps bcrypt comparison time constant when the email is
	// unknown, so signin latency does not reveal account existence.
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns domain.ErrEmailAlreadyExists
	// when the store's unique email constraint rejects the record.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email, or domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// TokenIssuer mints signed session tokens bound to a user identity.
type TokenIssuer interface {
	Issue(userID string, roles []string) (string, error)
}

// TokenRevoker records a token ID as revoked until its natural expiry.
// A nil revoker leaves tokens valid for their full lifetime.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// authUsecase orchestrates signup, signin and signout.
type authUsecase struct {
	users   UserRepository
	issuer  TokenIssuer
	revoker TokenRevoker
}

// NewAuthUsecase creates a new authUsecase. revoker may be nil when no
// revocation backend is configured.
func NewAuthUsecase(users UserRepository, issuer TokenIssuer, revoker TokenRevoker) *authUsecase {
	return &authUsecase{users: users, issuer: issuer, revoker: revoker}
}

// validateSignup checks the signup fields and returns per-field messages.
func validateSignup(name, email, password string) map[string]string {
	fields := map[string]string{}
	if name == "" {
		fields["name"] = "Name is required"
	}
	if email == "" {
		fields["email"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		fields["email"] = "Email is invalid"
	}
	if password == "" {
		fields["password"] = "Password is required"
	} else if len(password) < minPasswordLength {
		fields["password"] = fmt.Sprintf("Password must be at least %d characters", minPasswordLength)
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Signup registers a new user with a hashed password and the default role
// set. No record is created when validation fails.
func (u *authUsecase) Signup(ctx context.Context, name, email, password string) (*entity.User, error) {
	if fields := validateSignup(name, email, password); fields != nil {
		return nil, apperr.NewValidation(fields)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(name, email, string(hashed))
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, apperr.Wrap(apperr.Conflict, "User already exists", err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Signin authenticates a user and mints a session token. Unknown email and
// wrong password produce the same error; a dummy bcrypt comparison runs in
// the unknown-email case so both paths take comparable time.
func (u *authUsecase) Signin(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, findErr := u.users.FindByEmail(ctx, email)

	passwordHash := dummyHash
	if findErr == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if findErr != nil || compareErr != nil {
		return nil, "", apperr.New(apperr.Authentication, "Authentication failed. Invalid credentials.")
	}

	token, err := u.issuer.Issue(user.ID, user.Roles)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

// Signout revokes the presented token until its expiry. Without a revocation
// backend the token simply remains valid until it expires.
func (u *authUsecase) Signout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if u.revoker == nil {
		return nil
	}
	if err := u.revoker.Revoke(ctx, tokenID, expiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
