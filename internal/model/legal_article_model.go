package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LegalArticleModel struct {
	ID            string     `gorm:"type:uuid;primary_key" json:"id"`
	Title         string     `gorm:"type:varchar(500)" json:"title"`
	Body          *string    `gorm:"type:text" json:"body,omitempty"`
	RawContent    *string    `gorm:"type:text" json:"-"`
	Source        string     `gorm:"type:varchar(50)" json:"source"`
	SourceURL     string     `gorm:"type:text;index" json:"source_url"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	AutoGenerated bool       `gorm:"default:false" json:"auto_generated"`
	Status        string     `gorm:"type:varchar(20);default:'READY';index" json:"status"`
	AISummary     *string    `gorm:"type:text" json:"ai_summary,omitempty"`
	HumanSummary  *string    `gorm:"type:text" json:"human_summary,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (LegalArticleModel) TableName() string { return "legal_articles" }

func (a *LegalArticleModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
