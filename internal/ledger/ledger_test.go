// internal/ledger/ledger_test.go
package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shopledger/backend/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s %v", want, got.String(), msgAndArgs)
}

func testOrder(id, clientID string, items ...models.OrderItem) models.Order {
	return models.Order{
		BaseModel:            models.BaseModel{ID: id},
		ClientID:             clientID,
		CatalogID:            "cat-1",
		Items:                items,
		Status:               models.OrderStatusConfirmed,
		FobPaymentStatus:     models.PaymentStatusUnpaid,
		FreightPaymentStatus: models.PaymentStatusUnpaid,
		TotalFobPaid:         decimal.Zero,
		TotalFreightPaid:     decimal.Zero,
	}
}

func testItem(productID string, qty int, fob, freight string, attrs ...models.SelectedAttribute) models.OrderItem {
	return models.OrderItem{
		ID:                 productID + "-line",
		ProductID:          productID,
		ProductName:        productID,
		Quantity:           qty,
		FobTotal:           dec(fob),
		FreightTotal:       dec(freight),
		SelectedAttributes: attrs,
	}
}
