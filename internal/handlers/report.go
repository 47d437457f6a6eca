// internal/handlers/report.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shopledger/backend/internal/services"
	"github.com/shopledger/backend/internal/utils"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GET /reports/summary
func (h *ReportHandler) Summary(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"summary": h.reportService.Summary(),
	})
}

// GET /reports/clients/:id
func (h *ReportHandler) ClientStatement(c *gin.Context) {
	statement, err := h.reportService.ClientStatement(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"statement": statement,
	})
}
