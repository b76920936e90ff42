package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/freshkeeper-backend/internal/dto"
	"github.com/ignatzorin/freshkeeper-backend/internal/http/handlers/common"
	"github.com/ignatzorin/freshkeeper-backend/internal/pkg/apperror"
	"github.com/ignatzorin/freshkeeper-backend/internal/repository"
	"github.com/ignatzorin/freshkeeper-backend/internal/service"
)

// InventoryHandler обслуживает маршруты инвентаря продуктов.
type InventoryHandler struct {
	inventory *service.InventoryService
}

// NewInventoryHandler создаёт новый хэндлер.
func NewInventoryHandler(inventory *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// ListItems обрабатывает GET /inventory.
func (h *InventoryHandler) ListItems(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	items, err := h.inventory.ListItems(c.Request.Context(), userID)
	if err != nil {
		common.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.NewItemListResponse(items))
}

// CreateItem обрабатывает POST /inventory.
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req dto.CreateItemRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, "name, quantity, category и expiry_date обязательны")
		return
	}

	expiryDate, err := req.ParseExpiryDate()
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	item, err := h.inventory.CreateItem(c.Request.Context(), service.CreateItemInput{
		OwnerID:    userID,
		Name:       req.Name,
		Quantity:   req.Quantity,
		Category:   req.Category,
		ExpiryDate: expiryDate,
	})
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			common.RespondError(c, appErr.HTTPStatus, appErr.Message)
			return
		}
		common.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, dto.NewItemResponse(item))
}

// UpdateItem обрабатывает PUT /inventory/:id.
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	itemID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный идентификатор продукта")
		return
	}

	var req dto.UpdateItemRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, "name, quantity, category и expiry_date обязательны")
		return
	}

	expiryDate, err := req.ParseExpiryDate()
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	item, err := h.inventory.UpdateItem(c.Request.Context(), service.UpdateItemInput{
		ItemID:     itemID,
		OwnerID:    userID,
		Name:       req.Name,
		Quantity:   req.Quantity,
		Category:   req.Category,
		ExpiryDate: expiryDate,
	})
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			common.RespondError(c, appErr.HTTPStatus, appErr.Message)
			return
		}
		common.RespondInternalError(c, "")
		return
	}

	// Чужой или отсутствующий продукт не считается ошибкой:
	// обновлять нечего, в ответе пустой объект.
	if item == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, dto.NewItemResponse(item))
}

// DeleteItem обрабатывает DELETE /inventory/:id.
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	itemID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный идентификатор продукта")
		return
	}

	if err := h.inventory.DeleteItem(c.Request.Context(), itemID, userID); err != nil {
		common.RespondInternalError(c, "")
		return
	}

	c.Status(http.StatusNoContent)
}

// DonateItem обрабатывает POST /inventory/:id/donate.
func (h *InventoryHandler) DonateItem(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	itemID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, "неверный идентификатор продукта")
		return
	}

	item, err := h.inventory.DonateItem(c.Request.Context(), itemID, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrItemNotFound):
			common.RespondNotFound(c, "продукт не найден")
		case errors.Is(err, service.ErrAlreadyDonated):
			common.RespondBadRequest(c, "продукт уже передан на пожертвование")
		default:
			common.RespondInternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewItemResponse(item))
}
