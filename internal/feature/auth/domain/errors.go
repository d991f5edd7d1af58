// Package domain defines domain-level errors for user accounts.
package domain

import "errors"

var (
	// ErrUserNotFound indicates that no user matches the given email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists indicates that the store's unique email
	// constraint rejected a create.
	ErrEmailAlreadyExists = errors.New("email already exists")
)
