// Package dto defines data transfer objects for the users feature's HTTP
// transport layer.
package dto

import "recipe_backend/internal/feature/auth/domain/entity"

// UpdateUserReq is the request body for PUT /users/:id.
type UpdateUserReq struct {
	Name string `json:"name"`
}

// ChangePasswordReq is the request body for PATCH /users/:id/password.
type ChangePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Profile is the public view of a user profile.
type Profile struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// ProfileFromEntity maps a user entity to its public profile.
func ProfileFromEntity(u *entity.User) Profile {
	return Profile{ID: u.ID, Name: u.Name, Email: u.Email, Roles: u.Roles}
}
