// internal/middleware/auth.go
package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/shopledger/backend/internal/i18n"
	"github.com/shopledger/backend/internal/models"
	"github.com/shopledger/backend/internal/services"
	"github.com/shopledger/backend/internal/utils"
)

const userContextKey = "user"

type Authenticator interface {
	Authenticate(ctx context.Context, username, password, ip string) (*models.User, error)
}

// BasicAuth checks HTTP Basic credentials on every request. Failed attempts draw from the
// failures limiter; once a client has used them up it is refused before credentials are checked.
func BasicAuth(auth Authenticator, failures *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := utils.GetLangFromContext(c)
		ip := c.ClientIP()

		if failures != nil && failures.Exhausted(ip) {
			utils.TooManyRequestsResponse(c, i18n.T(lang, i18n.KeyAuthTooManyAttempts))
			c.Abort()
			return
		}

		username, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="shopledger"`)
			utils.UnauthorizedResponse(c, "")
			c.Abort()
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), username, password, ip)
		if err != nil {
			if failures != nil {
				failures.Consume(ip)
			}
			if errors.Is(err, services.ErrInvalidCredentials) {
				c.Header("WWW-Authenticate", `Basic realm="shopledger"`)
				utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidCredentials))
			} else {
				utils.InternalErrorResponse(c, "")
			}
			c.Abort()
			return
		}

		// Set user info in context
		c.Set(userContextKey, user)
		c.Set("username", user.Username)
		c.Next()
	}
}

// RequirePermission lets the request through only when the authenticated user holds perm.
func RequirePermission(authz *services.AuthorizationService, perm services.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authz.Require(CurrentUser(c), perm); err != nil {
			utils.ForbiddenResponse(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) *models.User {
	if v, exists := c.Get(userContextKey); exists {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
