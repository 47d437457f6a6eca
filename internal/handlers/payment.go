// internal/handlers/payment.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shopledger/backend/internal/i18n"
	"github.com/shopledger/backend/internal/services"
	"github.com/shopledger/backend/internal/utils"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// POST /payments
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.RecordPaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.Record(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	message := i18n.T(lang, i18n.KeyPaymentRecorded)
	if !payment.Attributed() {
		message = i18n.T(lang, i18n.KeyPaymentUnattributed)
	}

	utils.CreatedResponse(c, gin.H{
		"message": message,
		"payment": payment,
	})
}

// GET /payments/unattributed
func (h *PaymentHandler) ListUnattributed(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	utils.PaginatedResponse(c, h.paymentService.ListUnattributed(params))
}
