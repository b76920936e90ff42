package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/freshkeeper-backend/internal/domain/valueobject"
)

// InventoryItem описывает продукт в инвентаре.
// UserID может быть NULL: такие записи общие, их видят и изменяют все
// авторизованные пользователи.
type InventoryItem struct {
	ID         uuid.UUID             `db:"id" json:"id"`
	UserID     *uuid.UUID            `db:"user_id" json:"user_id,omitempty"`
	Name       string                `db:"name" json:"name"`
	Quantity   int                   `db:"quantity" json:"quantity"`
	Category   valueobject.Category  `db:"category" json:"category"`
	ExpiryDate time.Time             `db:"expiry_date" json:"expiry_date"`
	State      valueobject.ItemState `db:"state" json:"-"`
	// Status вычисляется на каждое чтение, в базе не хранится.
	Status    valueobject.ItemStatus `db:"-" json:"status"`
	CreatedAt time.Time              `db:"created_at" json:"created_at"`
	UpdatedAt time.Time              `db:"updated_at" json:"updated_at"`
}

// VisibleTo сообщает, видна ли запись пользователю. Записи без владельца
// видны всем.
func (i *InventoryItem) VisibleTo(userID uuid.UUID) bool {
	return i.UserID == nil || *i.UserID == userID
}
