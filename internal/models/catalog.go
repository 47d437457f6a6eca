// internal/models/catalog.go
package models

import "time"

// Catalog is one shipment/import batch ("month"); products and, through them, orders belong to it.
type Catalog struct {
	BaseModel
	Name        string        `json:"name"`
	ClosingDate time.Time     `json:"closing_date"`
	Status      CatalogStatus `json:"status"`
}

func (c Catalog) IsOpen() bool {
	return c.Status == CatalogStatusOpen
}
