package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/freshkeeper-backend/internal/logger"
	"github.com/ignatzorin/freshkeeper-backend/internal/pkg/apperror"
	"github.com/ignatzorin/freshkeeper-backend/internal/repository"
	"github.com/ignatzorin/freshkeeper-backend/internal/service"
)

// ErrorHandler обрабатывает ошибки централизованно.
// Известным ошибкам подбирает статус, всё остальное маскирует как
// внутреннюю ошибку, не раскрывая деталей клиенту.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Обработчик уже ответил сам
		if c.Writer.Written() {
			return
		}

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()

		if logger.Log != nil {
			logger.Log.WithFields(logrus.Fields{
				"error":  err.Error(),
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			}).Error("Request error")
		}

		statusCode, message := classifyError(err.Err)
		c.JSON(statusCode, gin.H{"error": message})
	}
}

// classifyError подбирает статус и сообщение для известных ошибок.
func classifyError(err error) (int, string) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus, appErr.Message
	}

	switch {
	case errors.Is(err, repository.ErrItemNotFound):
		return http.StatusNotFound, "продукт не найден"
	case errors.Is(err, repository.ErrUserNotFound):
		return http.StatusNotFound, "пользователь не найден"
	case errors.Is(err, repository.ErrEmailTaken):
		return http.StatusConflict, "пользователь с таким email уже существует"
	case errors.Is(err, service.ErrAlreadyDonated):
		return http.StatusBadRequest, "продукт уже передан на пожертвование"
	case errors.Is(err, service.ErrInvalidCode):
		return http.StatusBadRequest, "неверный или просроченный код подтверждения"
	case errors.Is(err, service.ErrCodeDelivery):
		return http.StatusInternalServerError, "не удалось отправить код подтверждения"
	}

	return http.StatusInternalServerError, "внутренняя ошибка сервера"
}
