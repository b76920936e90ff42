package models

import (
	"time"

	"github.com/google/uuid"
)

// User описывает зарегистрированного пользователя.
// Email хранится ровно в том виде, в каком был указан при регистрации,
// без приведения регистра.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
