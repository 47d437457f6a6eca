// internal/services/client_service.go
package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/models"
	"github.com/shopledger/backend/internal/store"
	"github.com/shopledger/backend/internal/utils"
)

// ClientService is the programmatic entry point for clients; they reach the HTTP API only
// through backup import.
type ClientService struct {
	repo *store.Repository
}

type ClientRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Phone string `json:"phone" validate:"required,phone"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

func NewClientService(repo *store.Repository) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) Create(ctx context.Context, req *ClientRequest) (*models.Client, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, invalidRequest(err)
	}

	now := time.Now()
	client := models.Client{
		BaseModel: models.BaseModel{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
		Name:      req.Name,
		Phone:     normalizePhone(req.Phone),
		Email:     strings.TrimSpace(req.Email),
	}

	err := s.repo.Update(ctx, func(st *store.State) error {
		st.Clients = append(st.Clients, client)
		return nil
	}, store.Clients)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) Update(ctx context.Context, id string, req *ClientRequest) (*models.Client, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, invalidRequest(err)
	}

	var client models.Client
	err := s.repo.Update(ctx, func(st *store.State) error {
		i := st.ClientIndex(id)
		if i < 0 {
			return ErrClientNotFound
		}
		c := &st.Clients[i]
		c.Name = req.Name
		c.Phone = normalizePhone(req.Phone)
		c.Email = strings.TrimSpace(req.Email)
		c.UpdatedAt = time.Now()
		client = *c
		return nil
	}, store.Clients)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) List() []models.Client {
	return s.repo.Snapshot().Clients
}

func (s *ClientService) Get(id string) (*models.Client, error) {
	var client models.Client
	err := s.repo.Read(func(st *store.State) error {
		i := st.ClientIndex(id)
		if i < 0 {
			return ErrClientNotFound
		}
		client = st.Clients[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// FindByPhone matches on digits only, so "0712 345 678" finds "0712345678".
func (s *ClientService) FindByPhone(phone string) (*models.Client, error) {
	want := normalizePhone(phone)
	var client *models.Client
	s.repo.Read(func(st *store.State) error {
		for i := range st.Clients {
			if normalizePhone(st.Clients[i].Phone) == want {
				c := st.Clients[i]
				client = &c
				return nil
			}
		}
		return nil
	})
	if client == nil {
		return nil, ErrClientNotFound
	}
	return client, nil
}

func normalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		if (r >= '0' && r <= '9') || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
