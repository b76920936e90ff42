package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/freshkeeper-backend/internal/models"
)

var ErrVerificationCodeNotFound = errors.New("verification code not found")

type VerificationRepository struct {
	db *sqlx.DB
}

func NewVerificationRepository(db *sqlx.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

func (r *VerificationRepository) CreateCode(ctx context.Context, email, code string, expiresAt time.Time) (*models.VerificationCode, error) {
	var vc models.VerificationCode
	err := r.db.GetContext(ctx, &vc, `
		INSERT INTO verification_codes (email, code, expires_at)
		VALUES ($1, $2, $3)
		RETURNING *
	`, email, code, expiresAt)
	return &vc, err
}

// ConsumeCode находит последний действующий код для адреса и помечает его
// использованным. Выданные ранее коды остаются в силе до своего истечения.
func (r *VerificationRepository) ConsumeCode(ctx context.Context, email, code string) error {
	var vc models.VerificationCode
	err := r.db.GetContext(ctx, &vc, `
		SELECT * FROM verification_codes
		WHERE email = $1 AND code = $2 AND used = false AND expires_at > NOW()
		ORDER BY id DESC LIMIT 1
	`, email, code)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrVerificationCodeNotFound
	}
	if err != nil {
		return err
	}

	// Условие used = false закрывает гонку двух одновременных проверок
	// одного и того же кода: пометить его успеет только одна.
	res, err := r.db.ExecContext(ctx, `UPDATE verification_codes SET used = true WHERE id = $1 AND used = false`, vc.ID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrVerificationCodeNotFound
	}

	return nil
}
