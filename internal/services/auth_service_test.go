// internal/services/auth_service_test.go
package services

import (
	"time"

	"github.com/shopledger/backend/internal/models"
)

func (s *ServicesTestSuite) TestEnsureAdminAndAuthenticate() {
	s.Require().NoError(s.auth.EnsureAdmin(s.ctx))
	s.Require().NoError(s.auth.EnsureAdmin(s.ctx))
	s.Len(s.users.List(), 1)

	user, err := s.auth.Authenticate(s.ctx, "owner", "owner-pass", "10.0.0.1")
	s.Require().NoError(err)
	s.Equal(models.RoleAdmin, user.Role)

	_, err = s.auth.Authenticate(s.ctx, "owner", "wrong", "10.0.0.1")
	s.ErrorIs(err, ErrInvalidCredentials)

	_, err = s.auth.Authenticate(s.ctx, "ghost", "owner-pass", "10.0.0.2")
	s.ErrorIs(err, ErrInvalidCredentials)

	attempts := s.auth.RecentAttempts(10)
	s.Require().Len(attempts, 3)
	s.Equal("ghost", attempts[0].Username)
	s.Equal("unknown user", attempts[0].Reason)
	s.True(attempts[2].Success)
}

func (s *ServicesTestSuite) TestInactiveUserCannotAuthenticate() {
	s.Require().NoError(s.auth.EnsureAdmin(s.ctx))
	_, err := s.users.Create(s.ctx, &CreateUserRequest{Username: "clerk", Password: "clerk-pass", Role: models.RoleOrderEntry})
	s.Require().NoError(err)

	_, err = s.users.Deactivate(s.ctx, "clerk")
	s.Require().NoError(err)

	_, err = s.auth.Authenticate(s.ctx, "clerk", "clerk-pass", "")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServicesTestSuite) TestFailedAttemptsSurviveRoutineSignIns() {
	s.Require().NoError(s.auth.EnsureAdmin(s.ctx))
	now := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)
	s.auth.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		_, err := s.auth.Authenticate(s.ctx, "owner", "guess", "10.0.0.9")
		s.ErrorIs(err, ErrInvalidCredentials)
	}
	for i := 0; i < 50; i++ {
		now = now.Add(time.Second)
		_, err := s.auth.Authenticate(s.ctx, "owner", "owner-pass", "10.0.0.1")
		s.Require().NoError(err)
	}

	attempts := s.auth.RecentAttempts(maxAuthLogs)
	s.Require().Len(attempts, 4)
	s.True(attempts[0].Success)
	for _, a := range attempts[1:] {
		s.False(a.Success)
		s.Equal("wrong password", a.Reason)
	}

	now = now.Add(successLogInterval)
	_, err := s.auth.Authenticate(s.ctx, "owner", "owner-pass", "10.0.0.1")
	s.Require().NoError(err)
	_, err = s.auth.Authenticate(s.ctx, "owner", "owner-pass", "10.0.0.2")
	s.Require().NoError(err)
	s.Len(s.auth.RecentAttempts(maxAuthLogs), 6)
}

func (s *ServicesTestSuite) TestLastAdminCannotBeRemoved() {
	s.Require().NoError(s.auth.EnsureAdmin(s.ctx))

	_, err := s.users.Deactivate(s.ctx, "owner")
	s.ErrorIs(err, ErrValidation)

	_, err = s.users.ChangeRole(s.ctx, "owner", models.RoleOrderEntry)
	s.ErrorIs(err, ErrValidation)

	_, err = s.users.Create(s.ctx, &CreateUserRequest{Username: "owner", Password: "another", Role: models.RoleAdmin})
	s.ErrorIs(err, ErrUserExists)
}

func (s *ServicesTestSuite) TestAuthorizationTable() {
	authz := NewAuthorizationService()
	clerk := &models.User{Role: models.RoleOrderEntry, Active: true}
	admin := &models.User{Role: models.RoleAdmin, Active: true}

	s.NoError(authz.Require(clerk, PermEnterOrders))
	s.NoError(authz.Require(clerk, PermRecordPayments))
	s.NoError(authz.Require(clerk, PermExportData))
	s.ErrorIs(authz.Require(clerk, PermManageCatalog), ErrForbidden)
	s.ErrorIs(authz.Require(clerk, PermImportData), ErrForbidden)
	s.ErrorIs(authz.Require(clerk, PermLockOrders), ErrForbidden)

	s.NoError(authz.Require(admin, PermImportData))
	s.NoError(authz.Require(admin, PermManageSettings))

	admin.Active = false
	s.ErrorIs(authz.Require(admin, PermViewReports), ErrForbidden)
	s.ErrorIs(authz.Require(nil, PermViewReports), ErrForbidden)
}
