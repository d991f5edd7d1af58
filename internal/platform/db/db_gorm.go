// Package db opens the relational store used by the credential and
// ingredient repositories.
package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"recipe_backend/internal/config"
	authentity "recipe_backend/internal/feature/auth/domain/entity"
	ingredientsentity "recipe_backend/internal/feature/ingredients/domain/entity"
)

// OpenDB connects to PostgreSQL with a retry window and optionally runs the
// schema migrations. TranslateError is enabled so unique-constraint
// violations surface as gorm.ErrDuplicatedKey in the adapters.
func OpenDB(cfg config.DBConfig) (*gorm.DB, error) {
	var (
		gdb *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		gdb, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("database connect failed after 60s: %w", err)
		}
		log.Printf("database connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := gdb.AutoMigrate(
			&authentity.User{},
			&ingredientsentity.Ingredient{},
		); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return gdb, nil
}
