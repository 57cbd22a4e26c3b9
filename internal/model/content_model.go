package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentModel struct {
	ID           string     `gorm:"type:uuid;primary_key" json:"id"`
	Kind         string     `gorm:"column:type;type:varchar(30);not null;index" json:"type"`
	AuthorUserID string     `gorm:"type:uuid;not null;index" json:"author_user_id"`
	CompanyID    *string    `gorm:"type:uuid;index" json:"company_id,omitempty"`
	Title        *string    `gorm:"type:varchar(255)" json:"title,omitempty"`
	Body         *string    `gorm:"type:text" json:"body,omitempty"`
	IsPublic     bool       `gorm:"not null;default:true;index" json:"is_public"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
	Meta         *string    `gorm:"type:text" json:"meta,omitempty"`
}

func (ContentModel) TableName() string { return "content" }

func (c *ContentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type ContentMediaModel struct {
	ID        string `gorm:"type:uuid;primary_key" json:"id"`
	ContentID string `gorm:"type:uuid;not null;index" json:"content_id"`
	MediaID   string `gorm:"type:uuid;not null;index" json:"media_id"`
	SortOrder int    `gorm:"not null;default:0" json:"sort_order"`
	IsCover   bool   `gorm:"not null;default:false" json:"is_cover"`
}

func (ContentMediaModel) TableName() string { return "content_media" }

func (cm *ContentMediaModel) BeforeCreate(tx *gorm.DB) error {
	if cm.ID == "" {
		cm.ID = uuid.New().String()
	}
	return nil
}
