package domain

import (
	"errors"

	"HomeStock-Backend/pkg/stock"
)

var (
	MessageFailedAddItem    = "failed to add item"
	MessageFailedDeleteItem = "failed to delete item"
	MessageFailedGetItems   = "failed to retrieve items"

	ErrItemNotFound      = errors.New("item not found")
	ErrInvalidQuantity   = errors.New("quantity must not be negative")
	ErrInvalidUsageDays  = errors.New("usage days must be at least one")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
)

type (
	AddItemRequest struct {
		ItemName     string  `json:"itemName" form:"itemName" validate:"required"`
		Quantity     float64 `json:"quantity" form:"quantity" validate:"min=0"`
		QuantityUnit string  `json:"quantityUnit" form:"quantityUnit" validate:"omitempty,oneof=g kg ml liter piece"`
		Location     string  `json:"location" form:"location" validate:"required"`
		UsageDays    float64 `json:"usageDays" form:"usageDays" validate:"required,gt=0"`
		UsageUnit    string  `json:"usageUnit" form:"usageUnit" validate:"omitempty,oneof=day month year"`
		// DaysLeft is accepted for compatibility with older clients but always
		// recomputed from the normalized usage horizon.
		DaysLeft   int    `json:"daysLeft" form:"daysLeft"`
		ExpiryDate string `json:"expiryDate" form:"expiryDate" validate:"omitempty,datetime=2006-01-02"`
	}

	ItemResponse struct {
		ID              string       `json:"id"`
		ItemName        string       `json:"itemName"`
		Quantity        float64      `json:"quantity"`
		QuantityUnit    string       `json:"quantityUnit"`
		DisplayQuantity string       `json:"displayQuantity"`
		Location        string       `json:"location"`
		UsageDays       int          `json:"usageDays"`
		DaysLeft        int          `json:"daysLeft"`
		DaysLeftText    string       `json:"daysLeftText"`
		ExpiryDate      string       `json:"expiryDate,omitempty"`
		Status          stock.Status `json:"status"`
		StatusLabel     string       `json:"statusLabel"`
		// Alerts lists the alert kinds that fired fresh for this record within
		// the current session, after de-duplication.
		Alerts []string `json:"alerts,omitempty"`
	}
)
