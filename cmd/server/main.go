package main

import (
	"log"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"recipe_backend/internal/app/di"
	"recipe_backend/internal/app/router"
	"recipe_backend/internal/config"
	authadapters "recipe_backend/internal/feature/auth/adapters"
	authhandler "recipe_backend/internal/feature/auth/transport/handler"
	authusecase "recipe_backend/internal/feature/auth/usecase"
	ingredientshandler "recipe_backend/internal/feature/ingredients/transport/handler"
	ingredientsusecase "recipe_backend/internal/feature/ingredients/usecase"
	usershandler "recipe_backend/internal/feature/users/transport/handler"
	usersusecase "recipe_backend/internal/feature/users/usecase"
	infradb "recipe_backend/internal/platform/db"
	infraredis "recipe_backend/internal/platform/redis"
	"recipe_backend/internal/platform/session"
	"recipe_backend/internal/platform/token"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Database
	db, err := infradb.OpenDB(cfg.DB)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	// Redis (optional: without it the service runs uncached and tokens stay
	// valid until natural expiry)
	var rdb *redisv9.Client
	if cfg.Redis.Addr() != "" {
		if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
			slog.Warn("Redis unavailable, running without cache and revocation", "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Token service and revocation
	tokenSvc := token.NewService(cfg.Token)
	var (
		revoker     authusecase.TokenRevoker
		revocations token.RevocationChecker
	)
	if rdb != nil {
		denylist := session.NewDenylistRedis(rdb, "revoked")
		revoker = denylist
		revocations = denylist
	}

	// Repositories
	userRepo := authadapters.NewUserGorm(db)
	ingredientRepo := di.NewIngredientRepository(rdb, db, 5*time.Minute)

	// Usecases
	authUC := authusecase.NewAuthUsecase(userRepo, tokenSvc, revoker)
	usersUC := usersusecase.NewUsersUsecase(userRepo)
	ingredientsUC := ingredientsusecase.NewIngredientsUsecase(ingredientRepo)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	usersH := usershandler.NewUsersHandler(usersUC)
	ingredientsH := ingredientshandler.NewIngredientsHandler(ingredientsUC)

	r := router.NewRouter(authH, usersH, ingredientsH, token.AuthRequired(tokenSvc, revocations))

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
