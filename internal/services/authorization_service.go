// internal/services/authorization_service.go
package services

import (
	"fmt"

	"github.com/shopledger/backend/internal/models"
)

type Permission string

const (
	PermEnterOrders    Permission = "orders.enter"
	PermLockOrders     Permission = "orders.lock"
	PermManageClients  Permission = "clients.manage"
	PermRecordPayments Permission = "payments.record"
	PermViewReports    Permission = "reports.view"
	PermExportData     Permission = "backup.export"
	PermImportData     Permission = "backup.import"
	PermManageCatalog  Permission = "catalog.manage"
	PermManageUsers    Permission = "users.manage"
	PermManageSettings Permission = "settings.manage"
)

// ADMIN holds every permission; only the order-entry role is listed.
var rolePermissions = map[models.Role][]Permission{
	models.RoleOrderEntry: {
		PermEnterOrders,
		PermManageClients,
		PermRecordPayments,
		PermViewReports,
		PermExportData,
	},
}

type AuthorizationService struct{}

func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

func (s *AuthorizationService) Can(role models.Role, perm Permission) bool {
	if role == models.RoleAdmin {
		return true
	}
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}

// Require fails with ErrForbidden unless the active user holds perm.
func (s *AuthorizationService) Require(user *models.User, perm Permission) error {
	if user == nil || !user.Active || !s.Can(user.Role, perm) {
		return fmt.Errorf("%w: %s", ErrForbidden, perm)
	}
	return nil
}

var allPermissions = []Permission{
	PermEnterOrders,
	PermLockOrders,
	PermManageClients,
	PermRecordPayments,
	PermViewReports,
	PermExportData,
	PermImportData,
	PermManageCatalog,
	PermManageUsers,
	PermManageSettings,
}

// Permissions lists what role may do.
func (s *AuthorizationService) Permissions(role models.Role) []Permission {
	var out []Permission
	for _, p := range allPermissions {
		if s.Can(role, p) {
			out = append(out, p)
		}
	}
	return out
}
