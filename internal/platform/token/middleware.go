package token

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/api"
)

// Context keys for the request-scoped identity attached after verification.
const (
	ContextUserID      = "authUserID"
	ContextRoles       = "authRoles"
	ContextTokenID     = "authTokenID"
	ContextTokenExpiry = "authTokenExpiry"
)

// Verifier validates a raw token string and returns its claims.
type Verifier interface {
	Verify(raw string) (*Claims, error)
}

// RevocationChecker reports whether a token ID has been revoked. A nil
// checker means tokens stay valid until natural expiry.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthRequired returns a middleware that gates protected routes. A missing
// header, non-Bearer scheme, invalid or revoked token all produce the same
// 401 body, and the check runs before any resource lookup.
func AuthRequired(verifier Verifier, revocations RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			api.AbortUnauthorized(c)
			return
		}

		claims, err := verifier.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			api.AbortUnauthorized(c)
			return
		}

		if revocations != nil {
			revoked, err := revocations.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				// Revocation storage being down must not lock every user
				// out; the token still carries a valid signature and expiry.
				slog.Warn("revocation check failed", "error", err, "token_id", claims.ID)
			} else if revoked {
				api.AbortUnauthorized(c)
				return
			}
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextRoles, []string(claims.Roles))
		c.Set(ContextTokenID, claims.ID)
		c.Set(ContextTokenExpiry, claims.ExpiresAt.Time)
		c.Next()
	}
}
