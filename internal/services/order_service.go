// internal/services/order_service.go
package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/shopledger/backend/internal/ledger"
	"github.com/shopledger/backend/internal/models"
	"github.com/shopledger/backend/internal/store"
	"github.com/shopledger/backend/internal/utils"
)

type OrderService struct {
	repo *store.Repository
}

type OrderItemRequest struct {
	ProductID          string                     `json:"product_id" validate:"required"`
	Quantity           int                        `json:"quantity" validate:"required,min=1"`
	SelectedAttributes []models.SelectedAttribute `json:"selected_attributes,omitempty"`
}

type CreateOrderRequest struct {
	ClientID  string             `json:"client_id" validate:"required"`
	CatalogID string             `json:"catalog_id" validate:"required"`
	Items     []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes     string             `json:"notes,omitempty" validate:"max=500"`
}

type UpdateItemsRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type AdvanceStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required"`
}

func NewOrderService(repo *store.Repository) *OrderService {
	return &OrderService{repo: repo}
}

// Create records a new DRAFT order. Line totals are priced from the products as they are now
// and each line is counted against the product's sold stock.
func (s *OrderService) Create(ctx context.Context, req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, invalidRequest(err)
	}

	var order models.Order
	err := s.repo.Update(ctx, func(st *store.State) error {
		if st.ClientIndex(req.ClientID) < 0 {
			return ErrClientNotFound
		}
		ci := st.CatalogIndex(req.CatalogID)
		if ci < 0 {
			return ErrCatalogNotFound
		}
		if !st.Catalogs[ci].IsOpen() {
			return ErrCatalogClosed
		}

		items, err := priceItems(st, req.CatalogID, req.Items)
		if err != nil {
			return err
		}

		now := time.Now()
		order = models.Order{
			BaseModel:        models.BaseModel{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
			ClientID:         req.ClientID,
			CatalogID:        req.CatalogID,
			Items:            items,
			Status:           models.OrderStatusDraft,
			TotalFobPaid:     decimal.Zero,
			TotalFreightPaid: decimal.Zero,
			Notes:            req.Notes,
		}
		ledger.RefreshPaymentStatuses(&order)

		adjustStockSold(st, order.Items, 1)
		st.Orders = append(st.Orders, order)
		return nil
	}, store.Orders, store.Products)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id":  order.ID,
		"client_id": order.ClientID,
		"items":     len(order.Items),
		"fob_cost":  order.FobCost().String(),
	}).Info("Order created")
	out := order.Clone()
	return &out, nil
}

// UpdateItems replaces the lines of an unlocked order, re-pricing them from current products.
func (s *OrderService) UpdateItems(ctx context.Context, id string, req *UpdateItemsRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, invalidRequest(err)
	}

	var order models.Order
	err := s.repo.Update(ctx, func(st *store.State) error {
		i := st.OrderIndex(id)
		if i < 0 {
			return ErrOrderNotFound
		}
		o := &st.Orders[i]
		if o.IsLocked {
			return ErrOrderLocked
		}

		items, err := priceItems(st, o.CatalogID, req.Items)
		if err != nil {
			return err
		}

		adjustStockSold(st, o.Items, -1)
		adjustStockSold(st, items, 1)

		o.Items = items
		ledger.RefreshPaymentStatuses(o)
		o.UpdatedAt = time.Now()
		order = o.Clone()
		return nil
	}, store.Orders, store.Products)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// AdvanceStatus moves the order forward in its lifecycle. Steps may be skipped; going back or
// staying put is rejected.
func (s *OrderService) AdvanceStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	if status.Rank() < 0 {
		return nil, validationError("unknown order status %q", status)
	}

	var order models.Order
	var from models.OrderStatus
	err := s.repo.Update(ctx, func(st *store.State) error {
		i := st.OrderIndex(id)
		if i < 0 {
			return ErrOrderNotFound
		}
		o := &st.Orders[i]
		if status.Rank() <= o.Status.Rank() {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, o.Status, status)
		}
		from = o.Status
		o.Status = status
		o.UpdatedAt = time.Now()
		order = o.Clone()
		return nil
	}, store.Orders)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": id,
		"from":     from,
		"to":       status,
	}).Info("Order status advanced")
	return &order, nil
}

// Lock freezes the order against payments, freight changes and item edits.
func (s *OrderService) Lock(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := s.repo.Update(ctx, func(st *store.State) error {
		i := st.OrderIndex(id)
		if i < 0 {
			return ErrOrderNotFound
		}
		o := &st.Orders[i]
		if !o.IsLocked {
			o.IsLocked = true
			o.UpdatedAt = time.Now()
		}
		order = o.Clone()
		return nil
	}, store.Orders)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) Get(id string) (*models.Order, error) {
	var order models.Order
	err := s.repo.Read(func(st *store.State) error {
		i := st.OrderIndex(id)
		if i < 0 {
			return ErrOrderNotFound
		}
		order = st.Orders[i].Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByClient returns the client's orders, newest first.
func (s *OrderService) ListByClient(clientID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.repo.Read(func(st *store.State) error {
		if st.ClientIndex(clientID) < 0 {
			return ErrClientNotFound
		}
		for _, o := range st.Orders {
			if o.ClientID == clientID {
				orders = append(orders, o.Clone())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func priceItems(st *store.State, catalogID string, reqs []OrderItemRequest) ([]models.OrderItem, error) {
	items := make([]models.OrderItem, 0, len(reqs))
	for _, r := range reqs {
		pi := st.ProductIndex(r.ProductID)
		if pi < 0 {
			return nil, ErrProductNotFound
		}
		p := st.Products[pi]
		if p.CatalogID != catalogID {
			return nil, validationError("product %s is not in this catalog", p.Name)
		}

		selection, err := canonicalSelection(p, r.SelectedAttributes)
		if err != nil {
			return nil, err
		}

		qty := decimal.NewFromInt(int64(r.Quantity))
		items = append(items, models.OrderItem{
			ID:                 uuid.NewString(),
			ProductID:          p.ID,
			ProductName:        p.Name,
			Quantity:           r.Quantity,
			FobTotal:           p.FobPrice.Mul(qty),
			FreightTotal:       p.FreightCharge.Mul(qty),
			SelectedAttributes: selection,
		})
	}
	return items, nil
}

// adjustStockSold adds (sign 1) or removes (sign -1) the lines from their products' sold counts.
func adjustStockSold(st *store.State, items []models.OrderItem, sign int) {
	for _, item := range items {
		pi := st.ProductIndex(item.ProductID)
		if pi < 0 {
			continue
		}
		p := &st.Products[pi]
		if p.StockSold == nil {
			p.StockSold = map[string]int{}
		}
		key := ledger.VariantKey(item.SelectedAttributes)
		p.StockSold[key] = max(0, p.StockSold[key]+sign*item.Quantity)
		p.UpdatedAt = time.Now()
	}
}
