// internal/handlers/order.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shopledger/backend/internal/i18n"
	"github.com/shopledger/backend/internal/services"
	"github.com/shopledger/backend/internal/utils"
)

type OrderHandler struct {
	orderService   *services.OrderService
	messageService *services.MessageService
}

func NewOrderHandler(orderService *services.OrderService, messageService *services.MessageService) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		messageService: messageService,
	}
}

// POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderCreated),
		"order":   order,
	})
}

// PUT /orders/:id/items
func (h *OrderHandler) UpdateItems(c *gin.Context) {
	var req services.UpdateItemsRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.UpdateItems(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}

// POST /orders/:id/status
func (h *OrderHandler) AdvanceStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.AdvanceStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.AdvanceStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderStatusUpdated),
		"order":   order,
	})
}

// POST /orders/:id/lock
func (h *OrderHandler) LockOrder(c *gin.Context) {
	order, err := h.orderService.Lock(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}

// GET /orders/:id/invoice-draft?kind=invoice|reminder
func (h *OrderHandler) InvoiceDraft(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	kind := services.MessageKind(c.DefaultQuery("kind", string(services.MessageInvoice)))
	if kind != services.MessageInvoice && kind != services.MessageReminder {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "kind"), nil)
		return
	}

	draft, err := h.messageService.Draft(c.Request.Context(), c.Param("id"), kind)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"draft": draft,
	})
}
