// internal/services/product_service.go
package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/shopledger/backend/internal/ledger"
	"github.com/shopledger/backend/internal/models"
	"github.com/shopledger/backend/internal/store"
	"github.com/shopledger/backend/internal/utils"
)

type ProductService struct {
	repo *store.Repository
}

type AttributeRequest struct {
	Name   string `json:"name" validate:"required,variant_attr"`
	Values string `json:"values" validate:"required,variant_attr"`
}

type ProductRequest struct {
	CatalogID     string             `json:"catalog_id" validate:"required"`
	Name          string             `json:"name" validate:"required,max=200"`
	Description   string             `json:"description,omitempty" validate:"max=2000"`
	ImageURL      string             `json:"image_url,omitempty" validate:"omitempty,url"`
	FobPrice      decimal.Decimal    `json:"fob_price"`
	FreightCharge decimal.Decimal    `json:"freight_charge"`
	Attributes    []AttributeRequest `json:"attributes" validate:"dive"`
}

type StockReceivedRequest struct {
	SelectedAttributes []models.SelectedAttribute `json:"selected_attributes"`
	Quantity           int                        `json:"quantity" validate:"required"`
}

type FreightRateResult struct {
	Product        models.Product `json:"product"`
	AffectedOrders []string       `json:"affected_orders"`
}

func NewProductService(repo *store.Repository) *ProductService {
	return &ProductService{repo: repo}
}

func (r *ProductRequest) validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if err := utils.ValidateStruct(r); err != nil {
		return invalidRequest(err)
	}
	if r.FobPrice.IsNegative() || r.FreightCharge.IsNegative() {
		return validationError("prices must not be negative")
	}
	seen := make(map[string]bool)
	for _, attr := range r.Attributes {
		key := strings.ToLower(strings.TrimSpace(attr.Name))
		if seen[key] {
			return validationError("attribute %q is listed twice", attr.Name)
		}
		seen[key] = true
	}
	return nil
}

func (r *ProductRequest) attributes() []models.ProductAttribute {
	out := make([]models.ProductAttribute, len(r.Attributes))
	for i, a := range r.Attributes {
		out[i] = models.ProductAttribute{Name: strings.TrimSpace(a.Name), Values: a.Values}
	}
	return out
}

// Create, Update and Delete are the programmatic entry points for products; over HTTP products
// arrive through backup import.
func (s *ProductService) Create(ctx context.Context, req *ProductRequest) (*models.Product, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	product := models.Product{
		BaseModel:     models.BaseModel{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
		CatalogID:     req.CatalogID,
		Name:          req.Name,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		FobPrice:      req.FobPrice,
		FreightCharge: req.FreightCharge,
		Attributes:    req.attributes(),
		StockReceived: map[string]int{},
		StockSold:     map[string]int{},
	}

	err := s.repo.Update(ctx, func(st *store.State) error {
		if st.CatalogIndex(req.CatalogID) < 0 {
			return ErrCatalogNotFound
		}
		st.Products = append(st.Products, product)
		return nil
	}, store.Products)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Update edits the product. Existing order lines keep their FOB snapshot; a changed freight
// charge is cascaded like UpdateFreightRate.
func (s *ProductService) Update(ctx context.Context, id string, req *ProductRequest) (*FreightRateResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	var result FreightRateResult
	err := s.repo.Update(ctx, func(st *store.State) error {
		i := st.ProductIndex(id)
		if i < 0 {
			return ErrProductNotFound
		}
		if st.CatalogIndex(req.CatalogID) < 0 {
			return ErrCatalogNotFound
		}

		p := st.Products[i].Clone()
		p.CatalogID = req.CatalogID
		p.Name = req.Name
		p.Description = req.Description
		p.ImageURL = req.ImageURL
		p.FobPrice = req.FobPrice
		p.Attributes = req.attributes()

		if !p.FreightCharge.Equal(req.FreightCharge) {
			if err := cascadeFreight(st, &p, req.FreightCharge, &result); err != nil {
				return err
			}
		}

		p.UpdatedAt = time.Now()
		st.Products[i] = p
		result.Product = p
		return nil
	}, store.Products, store.Orders)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete refuses products that appear on any order.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repo.Update(ctx, func(st *store.State) error {
		i := st.ProductIndex(id)
		if i < 0 {
			return ErrProductNotFound
		}
		for _, o := range st.Orders {
			if o.HasProduct(id) {
				return validationError("product is on order %s", o.ID)
			}
		}
		st.Products = append(st.Products[:i], st.Products[i+1:]...)
		return nil
	}, store.Products)
}

func (s *ProductService) Get(id string) (*models.Product, error) {
	var product models.Product
	err := s.repo.Read(func(st *store.State) error {
		i := st.ProductIndex(id)
		if i < 0 {
			return ErrProductNotFound
		}
		product = st.Products[i].Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) ListByCatalog(catalogID string) []models.Product {
	var out []models.Product
	s.repo.Read(func(st *store.State) error {
		for _, p := range st.Products {
			if p.CatalogID == catalogID {
				out = append(out, p.Clone())
			}
		}
		return nil
	})
	return out
}

// UpdateFreightRate sets the per-unit freight charge and re-prices freight on every open order
// line for the product.
func (s *ProductService) UpdateFreightRate(ctx context.Context, id string, rate decimal.Decimal) (*FreightRateResult, error) {
	var result FreightRateResult
	err := s.repo.Update(ctx, func(st *store.State) error {
		i := st.ProductIndex(id)
		if i < 0 {
			return ErrProductNotFound
		}
		p := st.Products[i]
		if err := cascadeFreight(st, &p, rate, &result); err != nil {
			return err
		}
		p.UpdatedAt = time.Now()
		st.Products[i] = p
		result.Product = p
		return nil
	}, store.Products, store.Orders)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"product_id":      id,
		"freight_rate":    rate.String(),
		"affected_orders": len(result.AffectedOrders),
	}).Info("Freight rate cascaded")
	return &result, nil
}

func cascadeFreight(st *store.State, p *models.Product, rate decimal.Decimal, result *FreightRateResult) error {
	updated, orders, affected, err := ledger.ApplyFreightRateChange(*p, rate, st.Orders)
	if err != nil {
		return validationError("%v", err)
	}

	now := time.Now()
	touched := make(map[string]bool, len(affected))
	for _, id := range affected {
		touched[id] = true
	}
	for i := range orders {
		if touched[orders[i].ID] {
			orders[i].UpdatedAt = now
		}
	}

	*p = updated
	st.Orders = orders
	result.AffectedOrders = append([]string{}, affected...)
	return nil
}

// RecordStockReceived adds quantity to the received count of one variant. A negative quantity
// corrects an earlier count but never takes it below zero.
func (s *ProductService) RecordStockReceived(ctx context.Context, id string, req *StockReceivedRequest) (*models.Product, error) {
	if req.Quantity == 0 {
		return nil, validationError("quantity must not be zero")
	}

	var product models.Product
	err := s.repo.Update(ctx, func(st *store.State) error {
		i := st.ProductIndex(id)
		if i < 0 {
			return ErrProductNotFound
		}
		p := &st.Products[i]

		selection, err := canonicalSelection(*p, req.SelectedAttributes)
		if err != nil {
			return err
		}
		key := ledger.VariantKey(selection)

		if p.StockReceived == nil {
			p.StockReceived = map[string]int{}
		}
		next := p.StockReceived[key] + req.Quantity
		if next < 0 {
			return validationError("received stock for %s would drop below zero", key)
		}
		p.StockReceived[key] = next
		p.UpdatedAt = time.Now()
		product = p.Clone()
		return nil
	}, store.Products)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Reconcile compares ordered and received stock of the product across every catalog.
func (s *ProductService) Reconcile(id string) (*ledger.Reconciliation, error) {
	var rec ledger.Reconciliation
	err := s.repo.Read(func(st *store.State) error {
		i := st.ProductIndex(id)
		if i < 0 {
			return ErrProductNotFound
		}
		rec = ledger.Reconcile(st.Products[i], st.Orders)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// canonicalSelection checks every picked attribute against the product and rewrites names and
// values to the product's own spelling so variant keys line up.
func canonicalSelection(p models.Product, selected []models.SelectedAttribute) ([]models.SelectedAttribute, error) {
	out := make([]models.SelectedAttribute, 0, len(selected))
	seen := make(map[string]bool, len(selected))

	for _, sel := range selected {
		name, value := strings.TrimSpace(sel.Name), strings.TrimSpace(sel.Value)
		match, ok := findOption(p, name, value)
		if !ok {
			return nil, validationError("%s: %s is not an option of %s", name, value, p.Name)
		}
		if seen[match.Name] {
			return nil, validationError("attribute %s picked twice", match.Name)
		}
		seen[match.Name] = true
		out = append(out, match)
	}
	return out, nil
}

func findOption(p models.Product, name, value string) (models.SelectedAttribute, bool) {
	if !p.Allows(models.SelectedAttribute{Name: name, Value: value}) {
		return models.SelectedAttribute{}, false
	}
	for _, attr := range p.Attributes {
		if !strings.EqualFold(attr.Name, name) {
			continue
		}
		for _, opt := range attr.Options() {
			if strings.EqualFold(opt, value) {
				return models.SelectedAttribute{Name: attr.Name, Value: opt}, true
			}
		}
	}
	return models.SelectedAttribute{}, false
}
