package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/freshkeeper-backend/internal/dto"
	"github.com/ignatzorin/freshkeeper-backend/internal/http/handlers/common"
	"github.com/ignatzorin/freshkeeper-backend/internal/repository"
	"github.com/ignatzorin/freshkeeper-backend/internal/service"
	"github.com/ignatzorin/freshkeeper-backend/internal/validation"
)

// AuthHandler предоставляет HTTP слой для регистрации и логина.
type AuthHandler struct {
	auth  *service.AuthService
	codes *service.VerificationService
}

// NewAuthHandler создаёт хэндлер.
func NewAuthHandler(auth *service.AuthService, codes *service.VerificationService) *AuthHandler {
	return &AuthHandler{auth: auth, codes: codes}
}

// SendCode обрабатывает POST /auth/send-code.
func (h *AuthHandler) SendCode(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email обязателен"})
		return
	}

	// Валидация email
	if err := validation.ValidateEmail(req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.codes.SendCode(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, service.ErrCodeDelivery) {
			common.RespondInternalError(c, "не удалось отправить код подтверждения")
			return
		}
		common.RespondInternalError(c, "")
		return
	}

	common.RespondSuccess(c, http.StatusOK, "код подтверждения отправлен", nil)
}

// Register обрабатывает POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email            string `json:"email" binding:"required"`
		Password         string `json:"password" binding:"required"`
		VerificationCode string `json:"verificationCode" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email, password и verificationCode обязательны"})
		return
	}

	// Валидация email
	if err := validation.ValidateEmail(req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Валидация пароля
	if err := validation.ValidatePassword(req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Валидация формата кода подтверждения
	if err := validation.ValidateVerificationCode(req.VerificationCode); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Code:     req.VerificationCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			common.RespondError(c, http.StatusConflict, "пользователь с таким email уже существует")
		case errors.Is(err, service.ErrInvalidCode):
			common.RespondBadRequest(c, "неверный или просроченный код подтверждения")
		default:
			common.RespondInternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "пользователь зарегистрирован",
		Token:   result.Token,
		User:    dto.NewUserResponse(result.User),
	})
}

// Login обрабатывает POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email и password обязательны"})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		// Единый ответ для любого сбоя входа, чтобы не раскрывать,
		// существует ли пользователь с таким email.
		common.RespondUnauthorized(c, "неверный email или пароль")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: result.Token,
		User:  dto.NewUserResponse(result.User),
	})
}
