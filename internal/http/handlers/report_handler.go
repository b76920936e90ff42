package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/freshkeeper-backend/internal/http/handlers/common"
	"github.com/ignatzorin/freshkeeper-backend/internal/service"
)

// ReportHandler обслуживает сводный отчёт по инвентарю.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler создаёт новый хэндлер.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// GetReport обрабатывает GET /report.
func (h *ReportHandler) GetReport(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reports.BuildReport(c.Request.Context(), userID)
	if err != nil {
		common.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, report)
}
