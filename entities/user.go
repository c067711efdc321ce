package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FullName string    `json:"full_name"`
	Username string    `json:"username"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Phone    string    `json:"phone"`
	Password string    `json:"-"` // bcrypt hash, never serialized
	Gender   string    `json:"gender"`

	Timestamp
}
