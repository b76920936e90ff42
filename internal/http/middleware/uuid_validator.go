package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UUIDParam отклоняет запрос до обработчика, если параметр пути не
// является корректным UUID.
// Использование: router.PUT("/inventory/:id", UUIDParam("id"), handler.Update)
func UUIDParam(paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := uuid.Parse(c.Param(paramName)); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "параметр " + paramName + " должен быть корректным UUID",
			})
			return
		}

		c.Next()
	}
}
