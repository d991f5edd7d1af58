// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/api"
	"recipe_backend/internal/apperr"
	"recipe_backend/internal/feature/auth/domain/entity"
	"recipe_backend/internal/feature/users/transport/http/dto"
	"recipe_backend/internal/platform/token"
)

// UsersUsecase defines the profile operations consumed by this handler.
type UsersUsecase interface {
	Get(ctx context.Context, id string) (*entity.User, error)
	UpdateProfile(ctx context.Context, subjectID, targetID, name string) (*entity.User, error)
	ChangePassword(ctx context.Context, subjectID, targetID, currentPassword, newPassword string) (*entity.User, error)
}

// UsersHandler handles HTTP requests for user profiles.
type UsersHandler struct {
	users UsersUsecase
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(users UsersUsecase) *UsersHandler {
	return &UsersHandler{users: users}
}

// Get handles GET /users/:id. Public, side-effect free.
func (h *UsersHandler) Get(c *gin.Context) {
	id := c.Param("id")

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		api.Fail(c, err)
		return
	}

	api.OK(c, http.StatusOK, "User data retrieved successfully",
		dto.ProfileFromEntity(user), api.ResourceLinks("users", user.ID))
}

// Update handles PUT /users/:id. The authenticated subject must own the
// profile being mutated.
func (h *UsersHandler) Update(c *gin.Context) {
	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, apperr.New(apperr.Validation, "Bad Request"))
		return
	}

	subject := c.GetString(token.ContextUserID)
	user, err := h.users.UpdateProfile(c.Request.Context(), subject, c.Param("id"), req.Name)
	if err != nil {
		slog.Warn("user update failed", "error", err, "user_id", c.Param("id"), "subject", subject)
		api.Fail(c, err)
		return
	}

	slog.Info("user updated", "user_id", user.ID)
	api.OK(c, http.StatusOK, "User Updated Successfully",
		dto.ProfileFromEntity(user), api.ResourceLinks("users", user.ID))
}

// ChangePassword handles PATCH /users/:id/password.
func (h *UsersHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, apperr.New(apperr.Validation, "Bad Request"))
		return
	}

	subject := c.GetString(token.ContextUserID)
	user, err := h.users.ChangePassword(c.Request.Context(), subject, c.Param("id"), req.CurrentPassword, req.NewPassword)
	if err != nil {
		slog.Warn("password change failed", "error", err, "user_id", c.Param("id"), "subject", subject)
		api.Fail(c, err)
		return
	}

	slog.Info("user password updated", "user_id", user.ID)
	api.OK(c, http.StatusOK, "User password updated successfully",
		dto.ProfileFromEntity(user), api.ResourceLinks("users", user.ID))
}
