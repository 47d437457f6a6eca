// internal/services/order_service_test.go
package services

import (
	"github.com/shopledger/backend/internal/models"
)

func (s *ServicesTestSuite) TestCreateOrderSnapshotsTotalsAndCountsStock() {
	order := s.createOrder(3, models.SelectedAttribute{Name: "color", Value: "red"}, models.SelectedAttribute{Name: "Size", Value: "m"})

	s.Equal(models.OrderStatusDraft, order.Status)
	s.Require().Len(order.Items, 1)
	s.equalDecimal("3000", order.Items[0].FobTotal)
	s.equalDecimal("300", order.Items[0].FreightTotal)
	s.Equal(models.PaymentStatusUnpaid, order.FobPaymentStatus)
	s.Equal([]models.SelectedAttribute{{Name: "Color", Value: "Red"}, {Name: "Size", Value: "M"}}, order.Items[0].SelectedAttributes)

	product, err := s.products.Get(s.shirt.ID)
	s.Require().NoError(err)
	s.Equal(3, product.StockSold["Color:Red, Size:M"])
}

func (s *ServicesTestSuite) TestCreateOrderValidation() {
	_, err := s.orders.Create(s.ctx, &CreateOrderRequest{
		ClientID:  s.client.ID,
		CatalogID: s.catalog.ID,
		Items:     []OrderItemRequest{{ProductID: s.shirt.ID, Quantity: 1, SelectedAttributes: []models.SelectedAttribute{{Name: "Size", Value: "XXL"}}}},
	})
	s.ErrorIs(err, ErrValidation)

	_, err = s.orders.Create(s.ctx, &CreateOrderRequest{ClientID: "missing", CatalogID: s.catalog.ID, Items: []OrderItemRequest{{ProductID: s.shirt.ID, Quantity: 1}}})
	s.ErrorIs(err, ErrClientNotFound)

	_, err = s.orders.Create(s.ctx, &CreateOrderRequest{ClientID: s.client.ID, CatalogID: s.catalog.ID})
	s.ErrorIs(err, ErrValidation)

	_, err = s.catalogs.Close(s.ctx, s.catalog.ID)
	s.Require().NoError(err)
	_, err = s.orders.Create(s.ctx, &CreateOrderRequest{ClientID: s.client.ID, CatalogID: s.catalog.ID, Items: []OrderItemRequest{{ProductID: s.shirt.ID, Quantity: 1}}})
	s.ErrorIs(err, ErrCatalogClosed)
}

func (s *ServicesTestSuite) TestAdvanceStatusOnlyMovesForward() {
	order := s.createOrder(1)

	updated, err := s.orders.AdvanceStatus(s.ctx, order.ID, models.OrderStatusShipped)
	s.Require().NoError(err)
	s.Equal(models.OrderStatusShipped, updated.Status)

	_, err = s.orders.AdvanceStatus(s.ctx, order.ID, models.OrderStatusConfirmed)
	s.ErrorIs(err, ErrInvalidTransition)

	_, err = s.orders.AdvanceStatus(s.ctx, order.ID, models.OrderStatusShipped)
	s.ErrorIs(err, ErrInvalidTransition)

	_, err = s.orders.AdvanceStatus(s.ctx, order.ID, "LOST")
	s.ErrorIs(err, ErrValidation)

	_, err = s.orders.AdvanceStatus(s.ctx, "missing", models.OrderStatusDelivered)
	s.ErrorIs(err, ErrOrderNotFound)
}

func (s *ServicesTestSuite) TestUpdateItemsMovesStockAndRespectsLock() {
	order := s.createOrder(2, models.SelectedAttribute{Name: "Size", Value: "S"})

	updated, err := s.orders.UpdateItems(s.ctx, order.ID, &UpdateItemsRequest{
		Items: []OrderItemRequest{{ProductID: s.shirt.ID, Quantity: 5, SelectedAttributes: []models.SelectedAttribute{{Name: "Size", Value: "L"}}}},
	})
	s.Require().NoError(err)
	s.equalDecimal("5000", updated.FobCost())

	product, err := s.products.Get(s.shirt.ID)
	s.Require().NoError(err)
	s.Equal(0, product.StockSold["Size:S"])
	s.Equal(5, product.StockSold["Size:L"])

	_, err = s.orders.Lock(s.ctx, order.ID)
	s.Require().NoError(err)
	_, err = s.orders.UpdateItems(s.ctx, order.ID, &UpdateItemsRequest{Items: []OrderItemRequest{{ProductID: s.shirt.ID, Quantity: 1}}})
	s.ErrorIs(err, ErrOrderLocked)
}

func (s *ServicesTestSuite) TestListByClient() {
	s.createOrder(1)
	s.createOrder(2)

	orders, err := s.orders.ListByClient(s.client.ID)
	s.Require().NoError(err)
	s.Len(orders, 2)

	_, err = s.orders.ListByClient("missing")
	s.ErrorIs(err, ErrNotFound)
}
