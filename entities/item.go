package entities

import (
	"time"

	"github.com/google/uuid"
)

type Item struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	ItemName     string     `json:"itemName"`
	Quantity     float64    `json:"quantity"` // stored in base units (g/ml/piece)
	QuantityUnit string     `json:"quantityUnit"`
	Location     string     `json:"location"`
	UsageDays    int        `json:"usageDays"`
	DaysLeft     int        `json:"daysLeft"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
