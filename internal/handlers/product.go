// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/i18n"
	"github.com/shopledger/backend/internal/services"
	"github.com/shopledger/backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

type FreightRateRequest struct {
	FreightCharge *decimal.Decimal `json:"freight_charge" validate:"required"`
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// PUT /products/:id/freight-rate
func (h *ProductHandler) UpdateFreightRate(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req FreightRateRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.productService.UpdateFreightRate(c.Request.Context(), c.Param("id"), *req.FreightCharge)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":         i18n.T(lang, i18n.KeyFreightUpdated, len(result.AffectedOrders)),
		"product":         result.Product,
		"affected_orders": result.AffectedOrders,
	})
}

// POST /products/:id/stock
func (h *ProductHandler) RecordStock(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.StockReceivedRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.RecordStockReceived(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyStockRecorded),
		"product": product,
	})
}

// GET /products/:id/reconciliation
func (h *ProductHandler) Reconciliation(c *gin.Context) {
	rec, err := h.productService.Reconcile(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"reconciliation": rec,
	})
}
