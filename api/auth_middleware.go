package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marbeya/quickstay-backend/auth"
)

// RequireAuth resolves the bearer token through the identity provider and
// stores the authenticated user on the request context.
func RequireAuth(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")

		if !found || len(token) == 0 {
			respondError(c, http.StatusUnauthorized, CodeUnauthorized, "missing authentication")
			c.Abort()
			return
		}

		user, err := verifier.VerifyToken(c.Request.Context(), token)

		if err != nil {
			respondError(c, http.StatusUnauthorized, CodeUnauthorized, "invalid authentication")
			c.Abort()
			return
		}

		c.Set("user", user)
	}
}

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)

		switch user.Role {
		case auth.RoleAdmin:
		case auth.RoleUser, auth.RoleOwner:
			respondError(c, http.StatusForbidden, CodeForbidden, "not allowed")
			c.Abort()
		default:
			respondError(c, http.StatusForbidden, CodeForbidden, "not allowed")
			c.Abort()
		}
	}
}

func CurrentUser(c *gin.Context) auth.User {
	return c.MustGet("user").(auth.User)
}
