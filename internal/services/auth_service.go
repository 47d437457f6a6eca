// internal/services/auth_service.go
package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shopledger/backend/internal/config"
	"github.com/shopledger/backend/internal/models"
	"github.com/shopledger/backend/internal/store"
)

const (
	// Oldest attempts are dropped beyond this many.
	maxAuthLogs = 1000
	// A successful sign-in is logged once per user and IP within this window.
	successLogInterval = 15 * time.Minute
)

type AuthService struct {
	repo        *store.Repository
	cfg         *config.Config
	userService *UserService

	mu          sync.Mutex
	lastSuccess map[string]time.Time
	now         func() time.Time
}

func NewAuthService(repo *store.Repository, cfg *config.Config, userService *UserService) *AuthService {
	return &AuthService{
		repo:        repo,
		cfg:         cfg,
		userService: userService,
		lastSuccess: make(map[string]time.Time),
		now:         time.Now,
	}
}

// Authenticate checks credentials and records the attempt. Unknown users, inactive users and
// wrong passwords all fail with ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password, ip string) (*models.User, error) {
	username = strings.TrimSpace(username)

	var user models.User
	found := false
	s.repo.Read(func(st *store.State) error {
		if i := st.UserIndex(username); i >= 0 {
			user = st.Users[i]
			found = true
		}
		return nil
	})

	reason := ""
	switch {
	case !found:
		reason = "unknown user"
	case !user.Active:
		reason = "inactive user"
	case user.CheckPassword(password) != nil:
		reason = "wrong password"
	}

	s.recordAttempt(ctx, username, ip, reason)

	if reason != "" {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// recordAttempt logs every failure but only the first success per user and IP in
// successLogInterval, so routine traffic does not push failures out of the log.
func (s *AuthService) recordAttempt(ctx context.Context, username, ip, reason string) {
	now := s.now()
	if reason == "" && !s.successDue(username, ip, now) {
		return
	}

	entry := models.AuthLog{
		ID:        uuid.NewString(),
		Username:  username,
		Success:   reason == "",
		Reason:    reason,
		IPAddress: ip,
		CreatedAt: now,
	}

	err := s.repo.Update(ctx, func(st *store.State) error {
		st.AuthLogs = append(st.AuthLogs, entry)
		if over := len(st.AuthLogs) - maxAuthLogs; over > 0 {
			st.AuthLogs = st.AuthLogs[over:]
		}
		return nil
	}, store.AuthLogs)
	if err != nil {
		logrus.WithError(err).WithField("username", username).Warn("Failed to persist auth log")
	}

	if reason != "" {
		logrus.WithFields(logrus.Fields{
			"username": username,
			"ip":       ip,
			"reason":   reason,
		}).Warn("Authentication failed")
	}
}

func (s *AuthService) successDue(username, ip string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := username + "|" + ip
	if last, ok := s.lastSuccess[key]; ok && now.Sub(last) < successLogInterval {
		return false
	}
	if len(s.lastSuccess) >= maxAuthLogs {
		for k, last := range s.lastSuccess {
			if now.Sub(last) >= successLogInterval {
				delete(s.lastSuccess, k)
			}
		}
	}
	s.lastSuccess[key] = now
	return true
}

// EnsureAdmin seeds the configured administrator when the shop has no users yet.
func (s *AuthService) EnsureAdmin(ctx context.Context) error {
	hasUsers := false
	s.repo.Read(func(st *store.State) error {
		hasUsers = len(st.Users) > 0
		return nil
	})
	if hasUsers {
		return nil
	}

	_, err := s.userService.Create(ctx, &CreateUserRequest{
		Username: s.cfg.Admin.Username,
		Password: s.cfg.Admin.Password,
		Role:     models.RoleAdmin,
	})
	if err != nil {
		return err
	}

	logrus.WithField("username", s.cfg.Admin.Username).Info("Default admin user created")
	return nil
}

// RecentAttempts returns up to limit auth log entries, newest first.
func (s *AuthService) RecentAttempts(limit int) []models.AuthLog {
	var out []models.AuthLog
	s.repo.Read(func(st *store.State) error {
		for i := len(st.AuthLogs) - 1; i >= 0 && len(out) < limit; i-- {
			out = append(out, st.AuthLogs[i])
		}
		return nil
	})
	return out
}
