// internal/ledger/freight.go
package ledger

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/models"
)

var ErrNegativeFreightRate = errors.New("freight rate must not be negative")

// ApplyFreightRateChange sets the product's per-unit freight charge and re-prices the freight of
// every open order line for that product. Returns the ids of the orders it touched.
func ApplyFreightRateChange(product models.Product, newRate decimal.Decimal, orders []models.Order) (models.Product, []models.Order, []string, error) {
	if newRate.IsNegative() {
		return product, orders, nil, ErrNegativeFreightRate
	}

	product = product.Clone()
	product.FreightCharge = newRate

	updated := make([]models.Order, len(orders))
	var affected []string
	for i, o := range orders {
		o = o.Clone()
		if o.IsOpen() && o.HasProduct(product.ID) {
			for j := range o.Items {
				if o.Items[j].ProductID == product.ID {
					o.Items[j].FreightTotal = newRate.Mul(decimal.NewFromInt(int64(o.Items[j].Quantity)))
				}
			}
			o.FreightPaymentStatus = DerivePaymentStatus(o.TotalFreightPaid, o.FreightCost())
			affected = append(affected, o.ID)
		}
		updated[i] = o
	}

	return product, updated, affected, nil
}
