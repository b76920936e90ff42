package dto

import (
	"time"

	"github.com/ignatzorin/freshkeeper-backend/internal/validation"
)

// CreateItemRequest represents the request to create an inventory item
type CreateItemRequest struct {
	Name       string `json:"name" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
	Category   string `json:"category" binding:"required"`
	ExpiryDate string `json:"expiry_date" binding:"required"`
}

// ParseExpiryDate converts the wire date (YYYY-MM-DD) to time.Time
func (r *CreateItemRequest) ParseExpiryDate() (time.Time, error) {
	return validation.ParseExpiryDate(r.ExpiryDate)
}

// UpdateItemRequest represents the request to update an inventory item
type UpdateItemRequest struct {
	Name       string `json:"name" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
	Category   string `json:"category" binding:"required"`
	ExpiryDate string `json:"expiry_date" binding:"required"`
}

// ParseExpiryDate converts the wire date (YYYY-MM-DD) to time.Time
func (r *UpdateItemRequest) ParseExpiryDate() (time.Time, error) {
	return validation.ParseExpiryDate(r.ExpiryDate)
}
