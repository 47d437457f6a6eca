// internal/services/user_service.go
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/models"
	"github.com/shopledger/backend/internal/store"
	"github.com/shopledger/backend/internal/utils"
)

type UserService struct {
	repo *store.Repository
}

type CreateUserRequest struct {
	Username string      `json:"username" validate:"required,min=3,max=50"`
	Password string      `json:"password" validate:"required,min=6"`
	Role     models.Role `json:"role" validate:"required,oneof=ADMIN ORDER_ENTRY"`
}

func NewUserService(repo *store.Repository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, req *CreateUserRequest) (*models.UserProfile, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, invalidRequest(err)
	}

	now := time.Now()
	user := models.User{
		BaseModel: models.BaseModel{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
		Username:  req.Username,
		Role:      req.Role,
		Active:    true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	err := s.repo.Update(ctx, func(st *store.State) error {
		if st.UserIndex(user.Username) >= 0 {
			return ErrUserExists
		}
		st.Users = append(st.Users, user)
		return nil
	}, store.Users)
	if err != nil {
		return nil, err
	}

	profile := user.Profile()
	return &profile, nil
}

func (s *UserService) List() []models.UserProfile {
	var out []models.UserProfile
	s.repo.Read(func(st *store.State) error {
		out = make([]models.UserProfile, 0, len(st.Users))
		for _, u := range st.Users {
			out = append(out, u.Profile())
		}
		return nil
	})
	return out
}

func (s *UserService) ChangeRole(ctx context.Context, username string, role models.Role) (*models.UserProfile, error) {
	if !role.Valid() {
		return nil, validationError("unknown role %q", role)
	}
	return s.mutate(ctx, username, func(u *models.User) {
		u.Role = role
	})
}

func (s *UserService) Deactivate(ctx context.Context, username string) (*models.UserProfile, error) {
	return s.mutate(ctx, username, func(u *models.User) {
		u.Active = false
	})
}

func (s *UserService) mutate(ctx context.Context, username string, fn func(u *models.User)) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.repo.Update(ctx, func(st *store.State) error {
		i := st.UserIndex(username)
		if i < 0 {
			return ErrUserNotFound
		}
		fn(&st.Users[i])
		if !hasActiveAdmin(st.Users) {
			return validationError("at least one active admin is required")
		}
		st.Users[i].UpdatedAt = time.Now()
		profile = st.Users[i].Profile()
		return nil
	}, store.Users)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func hasActiveAdmin(users []models.User) bool {
	for _, u := range users {
		if u.Active && u.Role == models.RoleAdmin {
			return true
		}
	}
	return false
}
