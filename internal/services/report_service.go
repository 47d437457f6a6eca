// internal/services/report_service.go
package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/models"
	"github.com/shopledger/backend/internal/store"
)

type ReportService struct {
	repo *store.Repository
}

type CatalogSummary struct {
	CatalogID          string               `json:"catalog_id"`
	Name               string               `json:"name"`
	Status             models.CatalogStatus `json:"status"`
	OrderCount         int                  `json:"order_count"`
	FobCost            decimal.Decimal      `json:"fob_cost"`
	FobPaid            decimal.Decimal      `json:"fob_paid"`
	FobOutstanding     decimal.Decimal      `json:"fob_outstanding"`
	FreightCost        decimal.Decimal      `json:"freight_cost"`
	FreightPaid        decimal.Decimal      `json:"freight_paid"`
	FreightOutstanding decimal.Decimal      `json:"freight_outstanding"`
}

type ShopSummary struct {
	GeneratedAt          time.Time                  `json:"generated_at"`
	Catalogs             []CatalogSummary           `json:"catalogs"`
	OrdersByStatus       map[models.OrderStatus]int `json:"orders_by_status"`
	TotalReceived        decimal.Decimal            `json:"total_received"`
	TotalOutstanding     decimal.Decimal            `json:"total_outstanding"`
	UnattributedPayments int                        `json:"unattributed_payments"`
	UnattributedAmount   decimal.Decimal            `json:"unattributed_amount"`
}

type OrderBalance struct {
	Order          models.Order    `json:"order"`
	FobCost        decimal.Decimal `json:"fob_cost"`
	FreightCost    decimal.Decimal `json:"freight_cost"`
	FobBalance     decimal.Decimal `json:"fob_balance"`
	FreightBalance decimal.Decimal `json:"freight_balance"`
}

type ClientStatement struct {
	Client       models.Client               `json:"client"`
	Orders       []OrderBalance              `json:"orders"`
	Payments     []models.PaymentTransaction `json:"payments"`
	TotalPaid    decimal.Decimal             `json:"total_paid"`
	TotalBalance decimal.Decimal             `json:"total_balance"`
}

func NewReportService(repo *store.Repository) *ReportService {
	return &ReportService{repo: repo}
}

// outstanding never goes negative; overpaid freight shows as zero owed.
func outstanding(cost, paid decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, cost.Sub(paid))
}

func (s *ReportService) Summary() *ShopSummary {
	summary := &ShopSummary{
		GeneratedAt:        time.Now(),
		OrdersByStatus:     map[models.OrderStatus]int{},
		TotalReceived:      decimal.Zero,
		TotalOutstanding:   decimal.Zero,
		UnattributedAmount: decimal.Zero,
	}

	s.repo.Read(func(st *store.State) error {
		byCatalog := make(map[string]*CatalogSummary, len(st.Catalogs))
		for _, c := range st.Catalogs {
			cs := CatalogSummary{
				CatalogID:          c.ID,
				Name:               c.Name,
				Status:             c.Status,
				FobCost:            decimal.Zero,
				FobPaid:            decimal.Zero,
				FobOutstanding:     decimal.Zero,
				FreightCost:        decimal.Zero,
				FreightPaid:        decimal.Zero,
				FreightOutstanding: decimal.Zero,
			}
			summary.Catalogs = append(summary.Catalogs, cs)
		}
		for i := range summary.Catalogs {
			byCatalog[summary.Catalogs[i].CatalogID] = &summary.Catalogs[i]
		}

		for _, o := range st.Orders {
			summary.OrdersByStatus[o.Status]++

			cs, ok := byCatalog[o.CatalogID]
			if !ok {
				continue
			}
			fobCost, freightCost := o.FobCost(), o.FreightCost()
			cs.OrderCount++
			cs.FobCost = cs.FobCost.Add(fobCost)
			cs.FobPaid = cs.FobPaid.Add(o.TotalFobPaid)
			cs.FobOutstanding = cs.FobOutstanding.Add(outstanding(fobCost, o.TotalFobPaid))
			cs.FreightCost = cs.FreightCost.Add(freightCost)
			cs.FreightPaid = cs.FreightPaid.Add(o.TotalFreightPaid)
			cs.FreightOutstanding = cs.FreightOutstanding.Add(outstanding(freightCost, o.TotalFreightPaid))
		}

		for _, cs := range summary.Catalogs {
			summary.TotalOutstanding = summary.TotalOutstanding.Add(cs.FobOutstanding).Add(cs.FreightOutstanding)
		}

		for _, p := range st.Payments {
			summary.TotalReceived = summary.TotalReceived.Add(p.Amount)
			if !p.Attributed() {
				summary.UnattributedPayments++
				summary.UnattributedAmount = summary.UnattributedAmount.Add(p.Amount)
			}
		}
		return nil
	})

	return summary
}

// ClientStatement lists the client's orders with balances and every payment that was either
// matched to the client or landed on one of its orders.
func (s *ReportService) ClientStatement(clientID string) (*ClientStatement, error) {
	statement := &ClientStatement{TotalPaid: decimal.Zero, TotalBalance: decimal.Zero}

	err := s.repo.Read(func(st *store.State) error {
		i := st.ClientIndex(clientID)
		if i < 0 {
			return ErrClientNotFound
		}
		statement.Client = st.Clients[i]

		own := make(map[string]bool)
		for _, o := range st.Orders {
			if o.ClientID != clientID {
				continue
			}
			own[o.ID] = true
			fobCost, freightCost := o.FobCost(), o.FreightCost()
			balance := OrderBalance{
				Order:          o.Clone(),
				FobCost:        fobCost,
				FreightCost:    freightCost,
				FobBalance:     outstanding(fobCost, o.TotalFobPaid),
				FreightBalance: outstanding(freightCost, o.TotalFreightPaid),
			}
			statement.Orders = append(statement.Orders, balance)
			statement.TotalBalance = statement.TotalBalance.Add(balance.FobBalance).Add(balance.FreightBalance)
		}

		for _, p := range st.Payments {
			if p.ClientID == clientID || touchesOrders(p, own) {
				statement.Payments = append(statement.Payments, p)
				statement.TotalPaid = statement.TotalPaid.Add(p.Amount)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(statement.Orders, func(i, j int) bool {
		return statement.Orders[i].Order.CreatedAt.Before(statement.Orders[j].Order.CreatedAt)
	})
	sort.SliceStable(statement.Payments, func(i, j int) bool {
		return statement.Payments[i].ReceivedAt.Before(statement.Payments[j].ReceivedAt)
	})
	return statement, nil
}

func touchesOrders(p models.PaymentTransaction, orders map[string]bool) bool {
	for _, a := range p.Allocations {
		if orders[a.OrderID] {
			return true
		}
	}
	return false
}
