// internal/services/catalog_service.go
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

// CatalogService is the programmatic entry point for catalogs; they reach the HTTP API only
// through backup import.
type CatalogService struct {
	repo *store.Repository
}

type CatalogRequest struct {
	Name        string    `json:"name" validate:"required,max=100"`
	ClosingDate time.Time `json:"closing_date" validate:"required"`
}

func NewCatalogService(repo *store.Repository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Create(ctx context.Context, req *CatalogRequest) (*models.Catalog, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, invalidRequest(err)
	}

	now := time.Now()
	catalog := models.Catalog{
		BaseModel:   models.BaseModel{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
		Name:        req.Name,
		ClosingDate: req.ClosingDate,
		Status:      models.CatalogStatusOpen,
	}

	err := s.repo.Update(ctx, func(st *store.State) error {
		st.Catalogs = append(st.Catalogs, catalog)
		return nil
	}, store.Catalogs)
	if err != nil {
		return nil, err
	}
	return &catalog, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, req *CatalogRequest) (*models.Catalog, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, invalidRequest(err)
	}

	return s.mutate(ctx, id, func(c *models.Catalog) error {
		c.Name = req.Name
		c.ClosingDate = req.ClosingDate
		return nil
	})
}

// Close stops new orders against the catalog. Closing twice is a no-op.
func (s *CatalogService) Close(ctx context.Context, id string) (*models.Catalog, error) {
	return s.mutate(ctx, id, func(c *models.Catalog) error {
		c.Status = models.CatalogStatusClosed
		return nil
	})
}

func (s *CatalogService) List() []models.Catalog {
	return s.repo.Snapshot().Catalogs
}

func (s *CatalogService) Get(id string) (*models.Catalog, error) {
	var catalog models.Catalog
	err := s.repo.Read(func(st *store.State) error {
		i := st.CatalogIndex(id)
		if i < 0 {
			return ErrCatalogNotFound
		}
		catalog = st.Catalogs[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &catalog, nil
}

func (s *CatalogService) mutate(ctx context.Context, id string, fn func(c *models.Catalog) error) (*models.Catalog, error) {
	var catalog models.Catalog
	err := s.repo.Update(ctx, func(st *store.State) error {
		i := st.CatalogIndex(id)
		if i < 0 {
			return ErrCatalogNotFound
		}
		if err := fn(&st.Catalogs[i]); err != nil {
			return err
		}
		st.Catalogs[i].UpdatedAt = time.Now()
		catalog = st.Catalogs[i]
		return nil
	}, store.Catalogs)
	if err != nil {
		return nil, err
	}
	return &catalog, nil
}
