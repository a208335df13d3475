package middleware

import (
	"context"
	"net/http"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/pkg/jwt"
	"storefront/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const accessCookieName = "accessToken"

// UserGetter loads the authenticated user for the request context.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Protect validates the access token (cookie first, Bearer header as
// fallback), loads the user, and attaches it to the gin context under
// "user", "user_id" and "role".
func Protect(signer *jwt.Signer, users UserGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := accessTokenFrom(c)
		if tokenStr == "" {
			abortUnauthorized(c, "Unauthorized - no access token provided")
			return
		}

		claims, err := signer.Validate(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Unauthorized - invalid access token")
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			abortUnauthorized(c, "Unauthorized - user not found")
			return
		}
		user.PasswordHash = ""

		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Set("role", string(user.Role))

		c.Next()
	}
}

func accessTokenFrom(c *gin.Context) string {
	if v, err := c.Cookie(accessCookieName); err == nil && v != "" {
		return v
	}
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

func abortUnauthorized(c *gin.Context, message string) {
	response.Error(c, http.StatusUnauthorized, message)
	c.Abort()
}
