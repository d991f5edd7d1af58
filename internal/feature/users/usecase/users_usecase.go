// Package usecase implements the business logic for user profiles.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"recipe_backend/internal/apperr"
	"recipe_backend/internal/feature/auth/domain"
	"recipe_backend/internal/feature/auth/domain/entity"
)

const minPasswordLength = 6

// UserRepository abstracts the persistence layer for profile operations.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// FindByID retrieves a user by ID, or domain.ErrUserNotFound.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// UpdateName replaces the display name and returns the updated user.
	UpdateName(ctx context.Context, id, name string) (*entity.User, error)

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// usersUsecase implements profile retrieval and mutation.
type usersUsecase struct {
	users UserRepository
}

// NewUsersUsecase creates a new usersUsecase.
func NewUsersUsecase(users UserRepository) *usersUsecase {
	return &usersUsecase{users: users}
}

// Get returns the public profile for a user ID. It is side-effect free.
func (u *usersUsecase) Get(ctx context.Context, id string) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperr.Wrap(apperr.NotFound, "User not found", err)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// UpdateProfile changes a user's display name. Only the account owner may
// mutate the profile; a cross-user attempt is Forbidden regardless of
// whether the target exists.
func (u *usersUsecase) UpdateProfile(ctx context.Context, subjectID, targetID, name string) (*entity.User, error) {
	if subjectID != targetID {
		return nil, apperr.New(apperr.Forbidden, "Forbidden")
	}
	if name == "" {
		return nil, apperr.NewValidation(map[string]string{"name": "Name is required"})
	}

	user, err := u.users.UpdateName(ctx, targetID, name)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperr.Wrap(apperr.NotFound, "User not found", err)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// ChangePassword verifies the current password and replaces the stored hash.
// Already-issued tokens stay valid until their natural expiry; the stateless
// token design accepts that limitation deliberately.
func (u *usersUsecase) ChangePassword(ctx context.Context, subjectID, targetID, currentPassword, newPassword string) (*entity.User, error) {
	if subjectID != targetID {
		return nil, apperr.New(apperr.Forbidden, "Forbidden")
	}

	fields := map[string]string{}
	if currentPassword == "" {
		fields["currentPassword"] = "Current password is required"
	}
	if newPassword == "" {
		fields["newPassword"] = "New password is required"
	} else if len(newPassword) < minPasswordLength {
		fields["newPassword"] = fmt.Sprintf("Password must be at least %d characters", minPasswordLength)
	}
	if len(fields) > 0 {
		return nil, apperr.NewValidation(fields)
	}

	user, err := u.users.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperr.Wrap(apperr.NotFound, "User not found", err)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return nil, apperr.New(apperr.Authentication, "Authentication failed. Invalid credentials.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := u.users.UpdatePassword(ctx, targetID, string(hashed)); err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}

	user.Password = string(hashed)
	return user, nil
}
