// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/api"
	"recipe_backend/internal/apperr"
	"recipe_backend/internal/feature/auth/domain/entity"
	"recipe_backend/internal/feature/auth/transport/http/dto"
	"recipe_backend/internal/platform/token"
)

// AuthUsecase defines the auth workflow consumed by this handler.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user and returns the created account.
	Signup(ctx context.Context, name, email, password string) (*entity.User, error)
	// Signin authenticates a user and returns the account with a session token.
	Signin(ctx context.Context, email, password string) (*entity.User, string, error)
	// Signout revokes the presented token until its natural expiry.
	Signout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// AuthHandler handles HTTP requests for signup, signin and signout.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /auth/signup.
// Validation failures return 400 with a per-field error map, duplicate
// emails return 409, success returns 201 with the public profile.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup body unreadable", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, apperr.New(apperr.Validation, "Bad Request"))
		return
	}

	user, err := h.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		api.Fail(c, err)
		return
	}

	slog.Info("user signup successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	api.OK(c, http.StatusCreated, "User registered successfully",
		dto.Profile{ID: user.ID, Name: user.Name, Email: user.Email},
		api.SignupLinks())
}

// Signin handles POST /auth/signin.
// Unknown email and wrong password are indistinguishable in the response.
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signin body unreadable", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, apperr.New(apperr.Validation, "Bad Request"))
		return
	}

	user, tok, err := h.auth.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("signin failed", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, err)
		return
	}

	slog.Info("user signin successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	api.OK(c, http.StatusOK, "Login successful",
		dto.SigninData{ID: user.ID, Name: user.Name, Email: user.Email, Token: tok},
		api.SigninLinks(user.ID))
}

// Signout handles POST /auth/signout. The route runs behind AuthRequired, so
// the token identity is already attached to the request.
func (h *AuthHandler) Signout(c *gin.Context) {
	tokenID := c.GetString(token.ContextTokenID)
	expiry, _ := c.Get(token.ContextTokenExpiry)
	expiresAt, _ := expiry.(time.Time)

	if err := h.auth.Signout(c.Request.Context(), tokenID, expiresAt); err != nil {
		slog.Error("signout failed", "error", err, "token_id", tokenID)
		api.Fail(c, err)
		return
	}

	slog.Info("user signout successful", "token_id", tokenID)
	api.OK(c, http.StatusOK, "Signed out successfully", nil, nil)
}
