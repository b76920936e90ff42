package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/freshkeeper-backend/internal/domain/valueobject"
	"github.com/ignatzorin/freshkeeper-backend/internal/dto"
	"github.com/ignatzorin/freshkeeper-backend/internal/http/middleware"
)

// CategoryHandler отдаёт справочник категорий хранения.
type CategoryHandler struct{}

// NewCategoryHandler создаёт новый хэндлер.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// ListCategories обрабатывает GET /categories.
// Маршрут доступен без токена; авторизованный запрос помечается
// флагом personalized.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	_, authenticated := c.Get(middleware.ContextUserIDKey)

	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Categories:   valueobject.Categories(),
		Personalized: authenticated,
	})
}
