// internal/store/gorm.go
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopledger/backend/internal/database"
	"github.com/shopledger/backend/internal/models"
)

// GormStore keeps one row per collection in the collections table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, collection Collection) ([]byte, error) {
	var doc models.CollectionDocument
	err := s.db.WithContext(ctx).Where("key = ?", string(collection)).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	return doc.Data, nil
}

func (s *GormStore) Set(ctx context.Context, collection Collection, data []byte) error {
	return upsert(s.db.WithContext(ctx), collection, data)
}

func (s *GormStore) SetMany(ctx context.Context, docs map[Collection][]byte) error {
	return database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		for collection, data := range docs {
			if err := upsert(tx, collection, data); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsert(db *gorm.DB, collection Collection, data []byte) error {
	doc := models.CollectionDocument{Key: string(collection), Data: data, UpdatedAt: time.Now()}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}
	return nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (s *GormStore) Close() error {
	database.Close(s.db)
	return nil
}
