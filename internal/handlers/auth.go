// internal/handlers/auth.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopledger/backend/internal/middleware"
	"github.com/shopledger/backend/internal/services"
	"github.com/shopledger/backend/internal/utils"
)

type AuthHandler struct {
	authService  *services.AuthService
	authzService *services.AuthorizationService
}

func NewAuthHandler(authService *services.AuthService, authzService *services.AuthorizationService) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		authzService: authzService,
	}
}

// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.UnauthorizedResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"user":        user.Profile(),
		"permissions": h.authzService.Permissions(user.Role),
	})
}

// GET /auth/logs
func (h *AuthHandler) Logs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 500 {
		limit = 50
	}

	utils.SuccessResponse(c, gin.H{
		"attempts": h.authService.RecentAttempts(limit),
	})
}
