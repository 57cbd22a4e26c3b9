package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaAssetModel struct {
	ID              string    `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID         string    `gorm:"type:uuid;not null;index" json:"owner_id"`
	URL             string    `gorm:"type:varchar(500);not null" json:"url"`
	Kind            string    `gorm:"column:type;type:varchar(20);not null" json:"type"`
	MimeType        string    `gorm:"type:varchar(100)" json:"mime_type"`
	Width           int       `gorm:"default:0" json:"width"`
	Height          int       `gorm:"default:0" json:"height"`
	SizeBytes       int64     `gorm:"default:0" json:"size_bytes"`
	StorageProvider string    `gorm:"type:varchar(30);default:'s3'" json:"storage_provider"`
	CreatedAt       time.Time `json:"created_at"`
}

func (MediaAssetModel) TableName() string { return "media_assets" }

func (m *MediaAssetModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
