package utils

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys set by Authenticate for downstream handlers.
const (
	CtxEmail  = "email"
	CtxClaims = "claims"
)

// Authenticate requires an "Authorization: Bearer <token>" header.
// A missing or malformed header is 401; a token that fails
// verification (bad signature or expired) is 403, matching the status
// split the frontend already depends on.
func Authenticate(jwtUtil *JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		claims, err := jwtUtil.VerifyToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid token"})
			return
		}

		email, _ := claims[CtxEmail].(string)
		c.Set(CtxEmail, email)
		c.Set(CtxClaims, map[string]interface{}(claims))
		c.Next()
	}
}

// AdminLookup resolves whether the authenticated email holds the admin
// role. The service layer backs it with the user store (and cache).
type AdminLookup func(ctx context.Context, email string) (bool, error)

// RequireAdmin runs after Authenticate and rejects non-admins.
func RequireAdmin(isAdmin AdminLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(CtxEmail)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}

		admin, err := isAdmin(c.Request.Context(), email)
		if err != nil || !admin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}

		c.Next()
	}
}

// RequireSelf runs after Authenticate and rejects requests whose
// email path parameter does not match the authenticated identity, so
// one user cannot read another's records.
func RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Param(param) != c.GetString(CtxEmail) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}
		c.Next()
	}
}
