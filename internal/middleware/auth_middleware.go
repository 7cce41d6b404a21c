package middleware

import (
	"strings"

	"github.com/foodexpress/foodexpress-api/internal/apperr"
	"github.com/foodexpress/foodexpress-api/internal/utils"
	"github.com/gin-gonic/gin"
)

// principalKey is the context key the auth guard stores the caller's
// identity under.
const principalKey = "principal"

// Principal is the authenticated identity bound to a request after
// token verification. Downstream guards and handlers read it through
// PrincipalFrom instead of loosely-typed context values.
type Principal struct {
	ID       string
	Email    string
	Username string
	Roles    []string
}

// IsAdmin reports whether the principal carries the admin role.
func (p *Principal) IsAdmin() bool {
	for _, r := range p.Roles {
		if r == "admin" {
			return true
		}
	}
	return false
}

// PrincipalFrom returns the request's principal, if the auth guard ran.
func PrincipalFrom(c *gin.Context) (*Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok
}

// Auth verifies the bearer token and binds the Principal to the
// request. Missing, malformed, and invalid/expired tokens all fail 401.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Error(apperr.Unauthorized("Authorization header required"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Error(apperr.Unauthorized("Invalid authorization format. Use: Bearer <token>"))
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			c.Error(apperr.Unauthorized("Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(principalKey, &Principal{
			ID:       claims.UserID,
			Email:    claims.Email,
			Username: claims.Username,
			Roles:    claims.Roles,
		})

		c.Next()
	}
}

// RequireAdmin rejects requests whose principal lacks the admin role.
// A missing principal fails 400 "User not authenticated" rather than
// 401; clients depend on that status, so it stays.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			c.Error(apperr.BadRequest("User not authenticated"))
			c.Abort()
			return
		}

		if !principal.IsAdmin() {
			c.Error(apperr.Forbidden("Access denied: admin only"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdminOrSelf passes admins and callers whose principal ID
// matches the :id path parameter.
func RequireAdminOrSelf() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			c.Error(apperr.BadRequest("User not authenticated"))
			c.Abort()
			return
		}

		targetID := c.Param("id")
		if principal.IsAdmin() || principal.ID == targetID {
			c.Next()
			return
		}

		c.Error(apperr.Forbidden("Access denied: admin or self only"))
		c.Abort()
	}
}
