// Package domain defines domain-level errors for the ingredients feature.
package domain

import "errors"

// ErrIngredientNotFound indicates that no ingredient matches the given ID.
var ErrIngredientNotFound = errors.New("ingredient not found")
