package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/freshkeeper-backend/internal/domain/valueobject"
	"github.com/ignatzorin/freshkeeper-backend/internal/models"
)

// UserResponse represents public user information
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// NewUserResponse creates a UserResponse from a user model
func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:    user.ID,
		Email: user.Email,
	}
}

// AuthResponse represents the response after a successful login
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// RegisterResponse represents the response after a successful registration
type RegisterResponse struct {
	Message string        `json:"message"`
	Token   string        `json:"token"`
	User    *UserResponse `json:"user"`
}

// ItemResponse represents an inventory item with its display status
// The ExpiryDate shadow keeps the wire format date-only
type ItemResponse struct {
	*models.InventoryItem
	ExpiryDate string `json:"expiry_date"`
}

// NewItemResponse creates an ItemResponse from an item model
func NewItemResponse(item *models.InventoryItem) *ItemResponse {
	return &ItemResponse{
		InventoryItem: item,
		ExpiryDate:    item.ExpiryDate.Format(time.DateOnly),
	}
}

// NewItemListResponse converts an item slice to responses
func NewItemListResponse(items []models.InventoryItem) []*ItemResponse {
	responses := make([]*ItemResponse, len(items))
	for i := range items {
		responses[i] = NewItemResponse(&items[i])
	}
	return responses
}

// CategoriesResponse represents the fixed category enumeration
type CategoriesResponse struct {
	Categories   []valueobject.Category `json:"categories"`
	Personalized bool                   `json:"personalized"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
