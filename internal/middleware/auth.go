package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maheenur13/laundry-lab-frontend/internal/auth"
	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

// Authenticate parses the access token when present and stores the caller's
// identity in the request context. Requests without a valid token pass
// through anonymously; RequireAuth is what rejects them.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := auth.ExtractAccessToken(c.Request)
		if tokenStr == "" {
			c.Next()
			return
		}

		claims, err := auth.ParseJWT(tokenStr)
		if err != nil {
			c.Next()
			return
		}

		c.Set(UserIDKey, claims.Subject)
		c.Set(PhoneKey, claims.Phone)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// RequireAuth rejects requests that did not authenticate.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserID(c); !ok {
			abortWithError(c, http.StatusUnauthorized, "authentication required")
			return
		}
		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role is not in the allowed
// set. It implies RequireAuth.
func RequireRole(roles ...laundry.Role) gin.HandlerFunc {
	allowed := make(map[laundry.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		if _, ok := UserID(c); !ok {
			abortWithError(c, http.StatusUnauthorized, "authentication required")
			return
		}
		role, ok := Role(c)
		if !ok || !allowed[role] {
			abortWithError(c, http.StatusForbidden, "insufficient role")
			return
		}
		c.Next()
	}
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success":   false,
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"path":      c.Request.URL.Path,
	})
}
