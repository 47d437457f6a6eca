// internal/ledger/allocator.go
package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/models"
)

// Allocation describes where a payment went. ClientID is empty when no client matched.
type Allocation struct {
	ClientID string                     `json:"client_id,omitempty"`
	Orders   []models.PaymentAllocation `json:"orders"`
}

// MatchClient resolves the payer of a payment. An explicit client reference wins; otherwise the
// first client whose name appears, case-insensitively, inside the payer name is taken.
func MatchClient(payment models.PaymentTransaction, clients []models.Client) (string, bool) {
	if payment.ClientID != "" {
		return payment.ClientID, true
	}

	payer := strings.ToLower(strings.TrimSpace(payment.PayerName))
	if payer == "" {
		return "", false
	}
	for _, client := range clients {
		name := strings.ToLower(strings.TrimSpace(client.Name))
		if name != "" && strings.Contains(payer, name) {
			return client.ID, true
		}
	}
	return "", false
}

// ApplyPayment spreads a payment over every open order of the matched client. Each order starts
// from the full payment amount: FOB is topped up first, and whatever is left goes to freight once
// FOB is covered, without a cap. The input slice is left untouched.
func ApplyPayment(payment models.PaymentTransaction, orders []models.Order, clients []models.Client) ([]models.Order, Allocation) {
	updated := make([]models.Order, len(orders))
	for i, o := range orders {
		updated[i] = o.Clone()
	}

	var alloc Allocation
	clientID, ok := MatchClient(payment, clients)
	if !ok || !payment.Amount.IsPositive() {
		return updated, alloc
	}
	alloc.ClientID = clientID

	for i := range updated {
		o := &updated[i]
		if o.ClientID != clientID || !o.IsOpen() {
			continue
		}

		fobCost := o.FobCost()
		remaining := payment.Amount
		fobApplied, freightApplied := decimal.Zero, decimal.Zero

		if o.TotalFobPaid.LessThan(fobCost) {
			fobApplied = decimal.Min(remaining, fobCost.Sub(o.TotalFobPaid))
			o.TotalFobPaid = o.TotalFobPaid.Add(fobApplied)
			remaining = remaining.Sub(fobApplied)
		}
		if remaining.IsPositive() && o.TotalFobPaid.GreaterThanOrEqual(fobCost) {
			freightApplied = remaining
			o.TotalFreightPaid = o.TotalFreightPaid.Add(remaining)
		}

		RefreshPaymentStatuses(o)
		alloc.Orders = append(alloc.Orders, models.PaymentAllocation{
			OrderID:        o.ID,
			FobApplied:     fobApplied,
			FreightApplied: freightApplied,
		})
	}

	return updated, alloc
}
