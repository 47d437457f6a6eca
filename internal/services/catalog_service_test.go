// internal/services/catalog_service_test.go
package services

import (
	"time"

	"github.com/shopledger/backend/internal/models"
)

func (s *ServicesTestSuite) TestCatalogLifecycle() {
	closing := time.Now().AddDate(0, 2, 0)
	updated, err := s.catalogs.Update(s.ctx, s.catalog.ID, &CatalogRequest{Name: "  April shipment ", ClosingDate: closing})
	s.Require().NoError(err)
	s.Equal("April shipment", updated.Name)
	s.Equal(models.CatalogStatusOpen, updated.Status)

	closed, err := s.catalogs.Close(s.ctx, s.catalog.ID)
	s.Require().NoError(err)
	s.Equal(models.CatalogStatusClosed, closed.Status)

	_, err = s.catalogs.Close(s.ctx, s.catalog.ID)
	s.NoError(err)

	_, err = s.catalogs.Get("missing")
	s.ErrorIs(err, ErrCatalogNotFound)
	s.ErrorIs(err, ErrNotFound)

	_, err = s.catalogs.Create(s.ctx, &CatalogRequest{Name: " "})
	s.ErrorIs(err, ErrValidation)
	s.Len(s.catalogs.List(), 1)
}

func (s *ServicesTestSuite) TestClientLookupAndUpdate() {
	found, err := s.clients.FindByPhone("0712-345-678")
	s.Require().NoError(err)
	s.Equal(s.client.ID, found.ID)

	_, err = s.clients.FindByPhone("0799 000 000")
	s.ErrorIs(err, ErrClientNotFound)

	updated, err := s.clients.Update(s.ctx, s.client.ID, &ClientRequest{Name: "Jane W.", Phone: "+254 712 345 678", Email: "jane@example.com"})
	s.Require().NoError(err)
	s.Equal("+254712345678", updated.Phone)

	_, err = s.clients.Update(s.ctx, s.client.ID, &ClientRequest{Name: "Jane W.", Phone: "not a phone"})
	s.ErrorIs(err, ErrValidation)

	_, err = s.clients.Update(s.ctx, "missing", &ClientRequest{Name: "Nobody", Phone: "0700000000"})
	s.ErrorIs(err, ErrClientNotFound)
}

func (s *ServicesTestSuite) TestListProductsByCatalog() {
	s.Len(s.products.ListByCatalog(s.catalog.ID), 1)
	s.Empty(s.products.ListByCatalog("other"))
}
