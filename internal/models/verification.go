package models

import "time"

// VerificationCode хранит одноразовый код подтверждения email.
// Ключ по адресу: код выдаётся до того, как пользователь создан.
// Кодов на один адрес может быть несколько, при проверке берётся
// последний выданный из ещё не истёкших.
type VerificationCode struct {
	ID        int64     `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Code      string    `db:"code" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	Used      bool      `db:"used" json:"used"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
