package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ignatzorin/freshkeeper-backend/internal/models"
)

// Ошибки проверки токена.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenSignature = errors.New("token signature mismatch")
	ErrTokenInvalid   = errors.New("invalid token")
)

// DefaultTokenTTL задаёт срок жизни токена, если он не переопределён
// конфигурацией.
const DefaultTokenTTL = 2 * time.Hour

// TokenClaims содержит проверенные данные из токена.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenManager отвечает за выпуск и проверку JWT.
// Секрет и срок жизни передаются явно при создании: без секрета менеджер
// не собирается, ошибка конфигурации всплывает на старте процесса,
// а не в виде вечных 401 на проде.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager создаёт менеджер токенов.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("token manager: не задан секрет подписи")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

// Issue выпускает токен для пользователя со сроком жизни по умолчанию.
func (m *TokenManager) Issue(user *models.User) (string, error) {
	return m.IssueWithTTL(user, m.ttl)
}

// IssueWithTTL выпускает токен с указанным сроком жизни.
func (m *TokenManager) IssueWithTTL(user *models.User, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = m.ttl
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify проверяет подпись и срок действия токена и возвращает клеймы.
// Содержимому токена после этих двух проверок доверяем без оговорок.
func (m *TokenManager) Verify(token string) (*TokenClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		}
		return nil, ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrTokenInvalid
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	email, _ := claims["email"].(string)

	result := &TokenClaims{
		UserID: userID,
		Email:  email,
	}

	if iat, ok := claims["iat"].(float64); ok {
		result.IssuedAt = time.Unix(int64(iat), 0)
	}
	if exp, ok := claims["exp"].(float64); ok {
		result.ExpiresAt = time.Unix(int64(exp), 0)
	}

	return result, nil
}

// TTL возвращает настроенный срок жизни токена.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}
