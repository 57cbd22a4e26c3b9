package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID              string    `gorm:"type:uuid;primary_key" json:"id"`
	ContentID       string    `gorm:"type:uuid;not null;index" json:"content_id"`
	AuthorUserID    string    `gorm:"type:uuid;not null;index" json:"author_user_id"`
	Body            string    `gorm:"type:text;not null" json:"body"`
	ParentCommentID *string   `gorm:"type:uuid" json:"parent_comment_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func (CommentModel) TableName() string { return "comments" }

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
