// internal/models/payment.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentTransaction is an incoming payment, usually transcribed from an SMS receipt.
type PaymentTransaction struct {
	BaseModel
	Amount          decimal.Decimal     `json:"amount"`
	PayerName       string              `json:"payer_name"`
	ClientID        string              `json:"client_id,omitempty"`
	RawMessage      string              `json:"raw_message,omitempty"`
	TransactionCode string              `json:"transaction_code"`
	Allocations     []PaymentAllocation `json:"allocations,omitempty"`
	ReceivedAt      time.Time           `json:"received_at"`
}

// PaymentAllocation records what one payment added to one order.
type PaymentAllocation struct {
	OrderID        string          `json:"order_id"`
	FobApplied     decimal.Decimal `json:"fob_applied"`
	FreightApplied decimal.Decimal `json:"freight_applied"`
}

// Attributed reports whether the payment landed on at least one order.
func (p PaymentTransaction) Attributed() bool {
	return len(p.Allocations) > 0
}
