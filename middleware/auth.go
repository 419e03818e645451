package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Rune905/Beauty-Bloom/services"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	UserIDKey  = "userID"
	AdminIDKey = "adminID"
	RoleKey    = "role"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// RequireAuth validates a customer token and stores the user id on the
// context.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil || claims.Scope != "user" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// RequireAdmin validates an admin-scope token. Customer tokens are rejected
// even when syntactically valid: admins are a separate identity space.
func RequireAdmin(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil || claims.Scope != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Set(AdminIDKey, claims.UserID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// GetUserID returns the authenticated customer's id from the context.
func GetUserID(c *gin.Context) (uint, error) {
	if val, ok := c.Get(UserIDKey); ok {
		if id, ok := val.(uint); ok && id != 0 {
			return id, nil
		}
	}
	return 0, errors.New("user ID not found in context")
}

// GetAdminID returns the authenticated admin's id from the context.
func GetAdminID(c *gin.Context) (uint, error) {
	if val, ok := c.Get(AdminIDKey); ok {
		if id, ok := val.(uint); ok && id != 0 {
			return id, nil
		}
	}
	return 0, errors.New("admin ID not found in context")
}
