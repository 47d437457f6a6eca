// internal/handlers/user.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shopledger/backend/internal/middleware"
	"github.com/shopledger/backend/internal/models"
	"github.com/shopledger/backend/internal/services"
	"github.com/shopledger/backend/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
}

type ChangeRoleRequest struct {
	Role models.Role `json:"role" validate:"required,oneof=ADMIN ORDER_ENTRY"`
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"users": h.userService.List(),
	})
}

// POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req services.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"user": user,
	})
}

// PUT /users/:username/role
func (h *UserHandler) ChangeRole(c *gin.Context) {
	var req ChangeRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.ChangeRole(c.Request.Context(), c.Param("username"), req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"user": user,
	})
}

// DELETE /users/:username
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	username := c.Param("username")
	if current := middleware.CurrentUser(c); current != nil && current.Username == username {
		utils.BadRequestResponse(c, "cannot deactivate the signed-in user", nil)
		return
	}

	user, err := h.userService.Deactivate(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"user": user,
	})
}
