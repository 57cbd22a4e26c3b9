package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TagModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Slug      string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"slug"`
	Label     string    `gorm:"type:varchar(100);not null" json:"label"`
	Type      string    `gorm:"type:varchar(30);not null;index" json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

func (TagModel) TableName() string { return "tags" }

func (t *TagModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

type TagLinkModel struct {
	ID         string `gorm:"type:uuid;primary_key" json:"id"`
	TagID      string `gorm:"type:uuid;not null;index" json:"tag_id"`
	EntityType string `gorm:"type:varchar(30);not null;index" json:"entity_type"`
	EntityID   string `gorm:"type:uuid;not null;index" json:"entity_id"`
}

func (TagLinkModel) TableName() string { return "tag_links" }

func (l *TagLinkModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
