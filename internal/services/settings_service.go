// internal/services/settings_service.go
package services

import (
	"context"
	"strings"
	"time"

	"github.com/shopledger/backend/internal/models"
	"github.com/shopledger/backend/internal/store"
	"github.com/shopledger/backend/internal/utils"
)

type SettingsService struct {
	repo *store.Repository
}

type PaybillAccountRequest struct {
	Paybill string `json:"paybill" validate:"omitempty,numeric,max=10"`
	Account string `json:"account" validate:"max=40"`
}

type UpdateSettingsRequest struct {
	BusinessName   string                `json:"business_name" validate:"required,max=100"`
	ContactNumbers []string              `json:"contact_numbers" validate:"dive,phone"`
	LogoURL        string                `json:"logo_url,omitempty" validate:"omitempty,url"`
	FobAccount     PaybillAccountRequest `json:"fob_account"`
	FreightAccount PaybillAccountRequest `json:"freight_account"`
	Theme          string                `json:"theme" validate:"omitempty,oneof=light dark"`
}

func NewSettingsService(repo *store.Repository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the shop settings, creating and saving the defaults on first use.
func (s *SettingsService) Get(ctx context.Context) (*models.ShopSettings, error) {
	var settings *models.ShopSettings
	s.repo.Read(func(st *store.State) error {
		if st.Settings != nil {
			cloned := st.Settings.Clone()
			settings = &cloned
		}
		return nil
	})
	if settings != nil {
		return settings, nil
	}

	var created models.ShopSettings
	err := s.repo.Update(ctx, func(st *store.State) error {
		// Another request may have created them meanwhile
		if st.Settings == nil {
			defaults := models.DefaultShopSettings()
			st.Settings = &defaults
		}
		created = st.Settings.Clone()
		return nil
	}, store.Settings)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *SettingsService) Update(ctx context.Context, req *UpdateSettingsRequest) (*models.ShopSettings, error) {
	req.BusinessName = strings.TrimSpace(req.BusinessName)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, invalidRequest(err)
	}

	theme := req.Theme
	if theme == "" {
		theme = "light"
	}
	settings := models.ShopSettings{
		BusinessName:   req.BusinessName,
		ContactNumbers: append([]string{}, req.ContactNumbers...),
		LogoURL:        req.LogoURL,
		FobAccount:     models.PaybillAccount(req.FobAccount),
		FreightAccount: models.PaybillAccount(req.FreightAccount),
		Theme:          theme,
		UpdatedAt:      time.Now(),
	}

	err := s.repo.Update(ctx, func(st *store.State) error {
		st.Settings = &settings
		return nil
	}, store.Settings)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
