// internal/ledger/status.go
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/models"
)

// DerivePaymentStatus maps a paid amount against a cost. A zero cost never reports PAID.
func DerivePaymentStatus(paid, cost decimal.Decimal) models.PaymentStatus {
	switch {
	case paid.GreaterThanOrEqual(cost) && cost.IsPositive():
		return models.PaymentStatusPaid
	case paid.IsZero():
		return models.PaymentStatusUnpaid
	default:
		return models.PaymentStatusPartial
	}
}

// RefreshPaymentStatuses re-derives both payment statuses of an order from its lines.
func RefreshPaymentStatuses(o *models.Order) {
	o.FobPaymentStatus = DerivePaymentStatus(o.TotalFobPaid, o.FobCost())
	o.FreightPaymentStatus = DerivePaymentStatus(o.TotalFreightPaid, o.FreightCost())
}
