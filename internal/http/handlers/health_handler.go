package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/freshkeeper-backend/internal/mail"
)

// HealthHandler отвечает на проверки живости сервиса.
type HealthHandler struct {
	db     *sqlx.DB
	sender *mail.Sender
}

// NewHealthHandler создаёт новый health handler.
func NewHealthHandler(db *sqlx.DB, sender *mail.Sender) *HealthHandler {
	return &HealthHandler{db: db, sender: sender}
}

// HealthResponse представляет ответ health check.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// Health обрабатывает GET /health. Недоступная база делает сервис
// unhealthy. Отсутствие SMTP только помечается в checks: без него не
// работает лишь отправка кодов подтверждения.
func (h *HealthHandler) Health(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		checks["database"] = "unhealthy: " + err.Error()
		status = "unhealthy"
	} else {
		checks["database"] = "healthy"
	}

	if h.sender != nil && h.sender.Configured() {
		checks["mail"] = "configured"
	} else {
		checks["mail"] = "not configured"
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Checks:    checks,
	})
}
