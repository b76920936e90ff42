package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification описывает событие инвентаря, сохранённое для пользователя.
// Записи только добавляются и никогда не изменяются.
type Notification struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Title     string    `db:"title" json:"title"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
