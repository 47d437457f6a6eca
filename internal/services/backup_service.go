// internal/services/backup_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shopledger/backend/internal/models"
	"github.com/shopledger/backend/internal/store"
	"github.com/shopledger/backend/internal/utils"
)

const backupVersion = 1

type BackupService struct {
	repo           *store.Repository
	storageService *StorageService
	archivePrefix  string
}

// Backup is the export file layout. Import accepts any subset of the collection keys.
type Backup struct {
	Version    int                         `json:"version"`
	ExportedAt time.Time                   `json:"exported_at"`
	Catalogs   []models.Catalog            `json:"catalogs"`
	Products   []models.Product            `json:"products"`
	Clients    []models.Client             `json:"clients"`
	Orders     []models.Order              `json:"orders"`
	Payments   []models.PaymentTransaction `json:"payments"`
	Settings   models.ShopSettings         `json:"settings"`
}

type ImportResult struct {
	Replaced map[string]int `json:"replaced"`
}

func NewBackupService(repo *store.Repository, storageService *StorageService, archivePrefix string) *BackupService {
	return &BackupService{
		repo:           repo,
		storageService: storageService,
		archivePrefix:  archivePrefix,
	}
}

func (s *BackupService) Export() ([]byte, error) {
	st := s.repo.Snapshot()

	settings := models.DefaultShopSettings()
	if st.Settings != nil {
		settings = *st.Settings
	}

	data, err := json.MarshalIndent(Backup{
		Version:    backupVersion,
		ExportedAt: time.Now(),
		Catalogs:   st.Catalogs,
		Products:   st.Products,
		Clients:    st.Clients,
		Orders:     st.Orders,
		Payments:   st.Payments,
		Settings:   settings,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return data, nil
}

// Import replaces each collection whose key is present in data. Any malformed key rejects the
// whole payload before anything is touched; absent keys are left alone.
func (s *BackupService) Import(ctx context.Context, data []byte) (*ImportResult, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}

	staged := store.NewState()
	result := &ImportResult{Replaced: map[string]int{}}
	var collections []store.Collection

	stage := func(c store.Collection, target interface{}, count func() int) error {
		raw, ok := doc[string(c)]
		if !ok {
			return nil
		}
		if err := decodeShaped(raw, target, c == store.Settings); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedImport, c, err)
		}
		collections = append(collections, c)
		result.Replaced[string(c)] = count()
		return nil
	}

	var settings models.ShopSettings
	steps := []error{
		stage(store.Catalogs, &staged.Catalogs, func() int { return len(staged.Catalogs) }),
		stage(store.Products, &staged.Products, func() int { return len(staged.Products) }),
		stage(store.Clients, &staged.Clients, func() int { return len(staged.Clients) }),
		stage(store.Orders, &staged.Orders, func() int { return len(staged.Orders) }),
		stage(store.Payments, &staged.Payments, func() int { return len(staged.Payments) }),
		stage(store.Settings, &settings, func() int { return 1 }),
	}
	for _, err := range steps {
		if err != nil {
			return nil, err
		}
	}

	err := s.repo.Update(ctx, func(st *store.State) error {
		for _, c := range collections {
			switch c {
			case store.Catalogs:
				st.Catalogs = staged.Catalogs
			case store.Products:
				st.Products = staged.Products
			case store.Clients:
				st.Clients = staged.Clients
			case store.Orders:
				st.Orders = staged.Orders
			case store.Payments:
				st.Payments = staged.Payments
			case store.Settings:
				st.Settings = &settings
			}
		}
		return nil
	}, collections...)
	if err != nil {
		return nil, err
	}

	logrus.WithField("replaced", result.Replaced).Info("Backup imported")
	return result, nil
}

// decodeShaped insists on a JSON array, or an object when wantObject is set; null is refused.
func decodeShaped(raw json.RawMessage, target interface{}, wantObject bool) error {
	trimmed := bytes.TrimSpace(raw)
	open, want := byte('['), "an array"
	if wantObject {
		open, want = '{', "an object"
	}
	if len(trimmed) == 0 || trimmed[0] != open {
		return fmt.Errorf("expected %s", want)
	}
	return json.Unmarshal(trimmed, target)
}

// Archive exports the shop and uploads it with its checksum.
func (s *BackupService) Archive(ctx context.Context) (*UploadResult, error) {
	data, err := s.Export()
	if err != nil {
		return nil, err
	}

	result, err := s.storageService.Upload(ctx, data, s.archivePrefix, ".json", "application/json", utils.HashBytes(data))
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"key":    result.Key,
		"size":   result.Size,
		"remote": result.Remote,
	}).Info("Backup archived")
	return result, nil
}
