// internal/ledger/reconcile.go
package ledger

import "github.com/shopledger/backend/internal/models"

// Reconciliation compares stock ordered against stock received for one product.
type Reconciliation struct {
	ProductID          string         `json:"product_id"`
	OrderedByVariant   map[string]int `json:"ordered_by_variant"`
	ReceivedByVariant  map[string]int `json:"received_by_variant"`
	TotalOrdered       int            `json:"total_ordered"`
	TotalReceived      int            `json:"total_received"`
	RemainingToReceive int            `json:"remaining_to_receive"`
	SurplusByVariant   map[string]int `json:"surplus_by_variant"`
}

// Reconcile counts every order line for the product regardless of catalog or status, so surplus
// is measured against everything ever ordered for it.
func Reconcile(product models.Product, orders []models.Order) Reconciliation {
	rec := Reconciliation{
		ProductID:         product.ID,
		OrderedByVariant:  make(map[string]int),
		ReceivedByVariant: make(map[string]int),
		SurplusByVariant:  make(map[string]int),
	}

	for _, o := range orders {
		for _, item := range o.Items {
			if item.ProductID != product.ID {
				continue
			}
			rec.OrderedByVariant[VariantKey(item.SelectedAttributes)] += item.Quantity
			rec.TotalOrdered += item.Quantity
		}
	}

	for variant, count := range product.StockReceived {
		rec.ReceivedByVariant[variant] = count
		rec.TotalReceived += count
		rec.SurplusByVariant[variant] = max(0, count-rec.OrderedByVariant[variant])
	}

	rec.RemainingToReceive = max(0, rec.TotalOrdered-rec.TotalReceived)
	return rec
}
