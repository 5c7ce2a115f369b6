package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mwhitfield/wedding-website-backend/config"
)

// ErrNotAllowed means the identity authenticated fine but is not an admin.
var ErrNotAllowed = errors.New("email not on admin allow-list")

// Authorizer decides whether an authenticated identity may enter the admin
// area. Identity itself is delegated to the external provider; we only verify
// its token and apply this capability.
type Authorizer interface {
	Authorize(email string) error
}

// AllowlistAuthorizer admits exactly the configured emails, case-insensitively.
type AllowlistAuthorizer struct {
	emails map[string]struct{}
}

func NewAllowlistAuthorizer(emails []string) *AllowlistAuthorizer {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		set[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}
	return &AllowlistAuthorizer{emails: set}
}

func (a *AllowlistAuthorizer) Authorize(email string) error {
	if _, ok := a.emails[strings.ToLower(strings.TrimSpace(email))]; !ok {
		return ErrNotAllowed
	}
	return nil
}

// AuthMiddleware verifies the provider-issued bearer token and runs the
// authorizer on its email claim. 401 for authentication problems, 403 when the
// identity is valid but not allow-listed.
func AuthMiddleware(cfg *config.Config, authorizer Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing Authorization header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid Authorization header"})
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(cfg.JWTAccessSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid claims"})
			return
		}

		email, ok := claims["email"].(string)
		if !ok || email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "email missing in token"})
			return
		}

		if err := authorizer.Authorize(email); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "not authorized for admin access"})
			return
		}

		c.Set("admin_email", strings.ToLower(strings.TrimSpace(email)))
		c.Next()
	}
}

// GetAdminEmail retrieves the authenticated admin identity from the context.
func GetAdminEmail(c *gin.Context) string {
	if v, exists := c.Get("admin_email"); exists {
		if email, ok := v.(string); ok {
			return email
		}
	}
	return ""
}
