package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ignatzorin/freshkeeper-backend/internal/models"
	"github.com/ignatzorin/freshkeeper-backend/internal/repository"
	"github.com/ignatzorin/freshkeeper-backend/internal/validation"
)

// Ошибки проверки одноразовых кодов.
var (
	ErrInvalidCode  = errors.New("invalid or expired verification code")
	ErrCodeDelivery = errors.New("verification code delivery failed")
)

// DefaultCodeTTL задаёт окно действия кода, если оно не переопределено
// конфигурацией.
const DefaultCodeTTL = 10 * time.Minute

// Диапазон шестизначных кодов.
const (
	codeMin = 100000
	codeMax = 999999
)

// VerificationCodeRepository описывает взаимодействие сервиса с хранилищем кодов.
type VerificationCodeRepository interface {
	CreateCode(ctx context.Context, email, code string, expiresAt time.Time) (*models.VerificationCode, error)
	ConsumeCode(ctx context.Context, email, code string) error
}

// CodeSender доставляет код получателю.
type CodeSender interface {
	SendCode(ctx context.Context, email, code string) error
}

// VerificationService выдаёт и проверяет одноразовые коды регистрации.
type VerificationService struct {
	repo   VerificationCodeRepository
	sender CodeSender
	ttl    time.Duration
}

// NewVerificationService создаёт сервис кодов подтверждения.
func NewVerificationService(repo VerificationCodeRepository, sender CodeSender, ttl time.Duration) *VerificationService {
	if ttl <= 0 {
		ttl = DefaultCodeTTL
	}
	return &VerificationService{repo: repo, sender: sender, ttl: ttl}
}

// SendCode генерирует код, сохраняет его и отправляет на адрес.
// Ошибка сохранения фатальна для запроса; ошибка доставки возвращается
// как ErrCodeDelivery и повторно не отправляется. Ранее выданные коды
// при этом остаются действительными до своего истечения.
func (s *VerificationService) SendCode(ctx context.Context, email string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(s.ttl)
	if _, err := s.repo.CreateCode(ctx, email, code, expiresAt); err != nil {
		return fmt.Errorf("verification service: create code %w", err)
	}

	if err := s.sender.SendCode(ctx, email, code); err != nil {
		return fmt.Errorf("%w: %v", ErrCodeDelivery, err)
	}

	return nil
}

// ValidateAndConsume проверяет код для адреса и гасит его.
// Из нескольких действующих кодов засчитывается последний выданный
// с совпадающим значением; успешно использованный код второй раз
// не принимается.
func (s *VerificationService) ValidateAndConsume(ctx context.Context, email, code string) error {
	if err := validation.ValidateVerificationCode(code); err != nil {
		return err
	}

	if err := s.repo.ConsumeCode(ctx, email, code); err != nil {
		if errors.Is(err, repository.ErrVerificationCodeNotFound) {
			return ErrInvalidCode
		}
		return fmt.Errorf("verification service: consume code %w", err)
	}

	return nil
}

// generateCode возвращает равномерно распределённый шестизначный код.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", fmt.Errorf("verification service: generate code %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+codeMin), nil
}
