package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/freshkeeper-backend/internal/service"
)

// Context ключи для gin.Context.
const (
	ContextUserIDKey = "userID"
	ContextEmailKey  = "userEmail"
)

var errNoCredentials = errors.New("no bearer credentials")

// authenticate извлекает bearer токен из заголовка и проверяет его.
func authenticate(c *gin.Context, tokens *service.TokenManager) (*service.TokenClaims, error) {
	auth := c.GetHeader("Authorization")
	if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
		return nil, errNoCredentials
	}

	raw := strings.TrimPrefix(auth, "Bearer ")
	if raw == "" {
		return nil, errNoCredentials
	}

	return tokens.Verify(raw)
}

// AuthRequired пропускает только запросы с действительным токеном.
// Отказ всегда выглядит одинаково: по ответу нельзя отличить
// отсутствующий токен от просроченного или подделанного.
func AuthRequired(tokens *service.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := authenticate(c, tokens)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "требуется авторизация"})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}

// AuthOptional добавляет личность в контекст, если токен есть и прошёл
// проверку. При любой проблеме с токеном запрос продолжается анонимно.
func AuthOptional(tokens *service.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := authenticate(c, tokens); err == nil {
			c.Set(ContextUserIDKey, claims.UserID)
			c.Set(ContextEmailKey, claims.Email)
		}
		c.Next()
	}
}
