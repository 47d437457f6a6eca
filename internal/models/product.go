// internal/models/product.go
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ProductAttribute is a named option axis, e.g. Size with Values "S, M, L".
type ProductAttribute struct {
	Name   string `json:"name"`
	Values string `json:"values"`
}

// Options splits the comma separated value list, dropping blanks.
func (a ProductAttribute) Options() []string {
	parts := strings.Split(a.Values, ",")
	options := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			options = append(options, p)
		}
	}
	return options
}

// SelectedAttribute is one attribute value picked for an order line.
type SelectedAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Product struct {
	BaseModel
	CatalogID     string             `json:"catalog_id"`
	Name          string             `json:"name"`
	Description   string             `json:"description,omitempty"`
	ImageURL      string             `json:"image_url,omitempty"`
	FobPrice      decimal.Decimal    `json:"fob_price"`
	FreightCharge decimal.Decimal    `json:"freight_charge"`
	Attributes    []ProductAttribute `json:"attributes"`

	// Keyed by canonical variant key
	StockReceived map[string]int `json:"stock_received"`
	StockSold     map[string]int `json:"stock_sold"`
}

// Allows reports whether sel names one of the product's attributes and one of its values.
func (p Product) Allows(sel SelectedAttribute) bool {
	for _, attr := range p.Attributes {
		if !strings.EqualFold(attr.Name, sel.Name) {
			continue
		}
		for _, opt := range attr.Options() {
			if strings.EqualFold(opt, sel.Value) {
				return true
			}
		}
	}
	return false
}

func (p Product) Clone() Product {
	out := p
	out.Attributes = append([]ProductAttribute(nil), p.Attributes...)
	out.StockReceived = cloneCounts(p.StockReceived)
	out.StockSold = cloneCounts(p.StockSold)
	return out
}

func cloneCounts(in map[string]int) map[string]int {
	if in == nil {
		return nil
	}
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
