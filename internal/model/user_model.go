package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID              string     `gorm:"type:uuid;primary_key" json:"id"`
	Email           string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash    string     `gorm:"type:varchar(255);not null" json:"-"`
	Role            string     `gorm:"type:varchar(30);default:'USER'" json:"role"`
	IsEmailVerified bool       `gorm:"not null;default:false" json:"is_email_verified"`
	CreatedAt       time.Time  `json:"created_at"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
