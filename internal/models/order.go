// internal/models/order.go
package models

import "github.com/shopspring/decimal"

// OrderItem totals are snapshotted at order entry and only rewritten by a freight cascade.
type OrderItem struct {
	ID                 string              `json:"id"`
	ProductID          string              `json:"product_id"`
	ProductName        string              `json:"product_name"`
	Quantity           int                 `json:"quantity"`
	FobTotal           decimal.Decimal     `json:"fob_total"`
	FreightTotal       decimal.Decimal     `json:"freight_total"`
	SelectedAttributes []SelectedAttribute `json:"selected_attributes,omitempty"`
}

type Order struct {
	BaseModel
	ClientID             string          `json:"client_id"`
	CatalogID            string          `json:"catalog_id"`
	Items                []OrderItem     `json:"items"`
	Status               OrderStatus     `json:"status"`
	FobPaymentStatus     PaymentStatus   `json:"fob_payment_status"`
	FreightPaymentStatus PaymentStatus   `json:"freight_payment_status"`
	TotalFobPaid         decimal.Decimal `json:"total_fob_paid"`
	TotalFreightPaid     decimal.Decimal `json:"total_freight_paid"`
	IsLocked             bool            `json:"is_locked"`
	Notes                string          `json:"notes,omitempty"`
}

func (o Order) FobCost() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.FobTotal)
	}
	return total
}

func (o Order) FreightCost() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.FreightTotal)
	}
	return total
}

// IsOpen reports whether the order still accepts financial mutation.
func (o Order) IsOpen() bool {
	return !o.IsLocked && o.Status != OrderStatusDelivered
}

func (o Order) HasProduct(productID string) bool {
	for _, item := range o.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

func (o Order) Clone() Order {
	out := o
	out.Items = make([]OrderItem, len(o.Items))
	for i, item := range o.Items {
		item.SelectedAttributes = append([]SelectedAttribute(nil), item.SelectedAttributes...)
		out.Items[i] = item
	}
	return out
}
