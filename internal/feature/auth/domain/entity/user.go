// Package entity defines the domain entities for the auth feature.
package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultRole is assigned to every user at creation.
const DefaultRole = "user"

// Roles is the set of role tags attached to a user. It is stored as a JSON
// array in a single column so the store stays schema-agnostic about roles.
type Roles []string

// Value implements driver.Valuer for persistence.
func (r Roles) Value() (driver.Value, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal roles: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner for loading from the store.
func (r *Roles) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	case nil:
		*r = nil
		return nil
	default:
		return fmt.Errorf("unsupported roles column type %T", src)
	}
}

// User represents a registered account.
type User struct {
	// ID is the opaque unique identifier, assigned at creation, immutable.
	ID string `gorm:"primaryKey;size:36"`

	// Name is the display name. Required, mutable via profile update.
	Name string `gorm:"size:255;not null"`

	// Email is the signin key. Uniqueness is enforced by the store's unique
	// index rather than an application-level lookup, so concurrent duplicate
	// signups resolve to exactly one success.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash. Never serialized to clients.
	Password string `gorm:"size:255;not null"`

	// Roles holds the user's role tags, defaulting to ["user"].
	Roles Roles `gorm:"type:text;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a user with a fresh ID and the default role set.
// passwordHash must already be hashed; NewUser never sees plaintext.
func NewUser(name, email, passwordHash string) *User {
	return &User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: passwordHash,
		Roles:    Roles{DefaultRole},
	}
}
