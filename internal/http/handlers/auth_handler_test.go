package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_SendCode_MissingBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &AuthHandler{auth: nil, codes: nil}
	r.POST("/auth/send-code", handler.SendCode)

	w := postJSON(r, "/auth/send-code", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_SendCode_InvalidEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &AuthHandler{auth: nil, codes: nil}
	r.POST("/auth/send-code", handler.SendCode)

	w := postJSON(r, "/auth/send-code", `{"email": "not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &AuthHandler{auth: nil, codes: nil}
	r.POST("/auth/register", handler.Register)

	// Нет пароля и кода подтверждения
	w := postJSON(r, "/auth/register", `{"email": "user@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &AuthHandler{auth: nil, codes: nil}
	r.POST("/auth/register", handler.Register)

	w := postJSON(r, "/auth/register", `{"email": "broken", "password": "Password1", "verificationCode": "123456"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Register_WeakPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &AuthHandler{auth: nil, codes: nil}
	r.POST("/auth/register", handler.Register)

	// Нет заглавных букв и цифр
	w := postJSON(r, "/auth/register", `{"email": "user@example.com", "password": "weakpassword", "verificationCode": "123456"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "пароль")
}

func TestAuthHandler_Login_MissingBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &AuthHandler{auth: nil, codes: nil}
	r.POST("/auth/login", handler.Login)

	w := postJSON(r, "/auth/login", `{"email": "user@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
