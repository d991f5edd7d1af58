// Package token issues and verifies the signed, time-bound session tokens
// that carry a user's identity between requests.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"recipe_backend/internal/config"
)

// Claims is the payload of a session token: subject is the user ID, ID is
// the unique token identifier (jti) used for revocation, Roles snapshots the
// user's roles at issuance.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// ErrInvalidToken is returned for any token that fails verification:
// unparseable, bad signature, wrong algorithm or expired. Callers must not
// distinguish the causes.
var ErrInvalidToken = errors.New("invalid token")

// Service mints and verifies HS256 session tokens. It is stateless and safe
// for concurrent use.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a Service from the token configuration. The secret and
// TTL are fixed at construction; no ambient environment lookups happen
// during issue or verify.
func NewService(cfg config.TokenConfig) *Service {
	return &Service{secret: []byte(cfg.Secret), ttl: cfg.TTL}
}

// Issue mints a signed token bound to the user ID with a fresh jti and the
// configured expiry window.
func (s *Service) Issue(userID string, roles []string) (string, error) {
	now := time.Now()
	claims := Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a raw token string, returning its claims.
// All failure causes collapse into ErrInvalidToken.
func (s *Service) Verify(raw string) (*Claims, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
