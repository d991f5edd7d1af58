// Package router registers the HTTP routes for the service.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "recipe_backend/internal/feature/auth/transport/handler"
	ingredientshandler "recipe_backend/internal/feature/ingredients/transport/handler"
	usershandler "recipe_backend/internal/feature/users/transport/handler"
	platformhandler "recipe_backend/internal/platform/http/handler"
)

// NewRouter builds the gin engine with all routes registered. authRequired
// gates every mutating route; reads stay public. The gate runs before any
// resource lookup, so a missing credential is always 401 regardless of
// whether the resource exists.
func NewRouter(
	auth *authhandler.AuthHandler,
	users *usershandler.UsersHandler,
	ingredients *ingredientshandler.IngredientsHandler,
	authRequired gin.HandlerFunc,
) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", platformhandler.Health)

	v1 := r.Group("/api/v1")

	// Public routes.
	v1.POST("/auth/signup", auth.Signup)
	v1.POST("/auth/signin", auth.Signin)
	v1.GET("/users/:id", users.Get)
	v1.GET("/ingredients", ingredients.List)
	v1.GET("/ingredients/:id", ingredients.Get)

	// Routes requiring a valid session token.
	protected := v1.Group("")
	protected.Use(authRequired)
	{
		protected.POST("/auth/signout", auth.Signout)
		protected.PUT("/users/:id", users.Update)
		protected.PATCH("/users/:id/password", users.ChangePassword)
		protected.POST("/ingredients", ingredients.Create)
		protected.PUT("/ingredients/:id", ingredients.Update)
		protected.DELETE("/ingredients/:id", ingredients.Delete)
	}

	return r
}
