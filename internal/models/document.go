// internal/models/document.go
package models

import "time"

// CollectionDocument is one whole-collection JSON snapshot in the relational store.
type CollectionDocument struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Data      []byte    `gorm:"type:jsonb;not null" json:"data"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CollectionDocument) TableName() string {
	return "collections"
}
