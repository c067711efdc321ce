package entities

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Token     string    `gorm:"primary_key" json:"-"`
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
