// internal/services/product_service_test.go
package services

import (
	"github.com/shopledger/backend/internal/models"
)

func (s *ServicesTestSuite) TestUpdateFreightRateCascades() {
	open := s.createOrder(3)
	delivered := s.createOrder(2)
	_, err := s.orders.AdvanceStatus(s.ctx, delivered.ID, models.OrderStatusDelivered)
	s.Require().NoError(err)

	result, err := s.products.UpdateFreightRate(s.ctx, s.shirt.ID, dec("150"))
	s.Require().NoError(err)
	s.Equal([]string{open.ID}, result.AffectedOrders)
	s.equalDecimal("150", result.Product.FreightCharge)

	stored, err := s.orders.Get(open.ID)
	s.Require().NoError(err)
	s.equalDecimal("450", stored.Items[0].FreightTotal)
	s.equalDecimal("3000", stored.Items[0].FobTotal)

	stored, err = s.orders.Get(delivered.ID)
	s.Require().NoError(err)
	s.equalDecimal("200", stored.Items[0].FreightTotal)

	_, err = s.products.UpdateFreightRate(s.ctx, s.shirt.ID, dec("-5"))
	s.ErrorIs(err, ErrValidation)

	_, err = s.products.UpdateFreightRate(s.ctx, "missing", dec("5"))
	s.ErrorIs(err, ErrProductNotFound)
}

func (s *ServicesTestSuite) TestProductUpdateCascadesChangedFreight() {
	order := s.createOrder(2)

	result, err := s.products.Update(s.ctx, s.shirt.ID, &ProductRequest{
		CatalogID:     s.catalog.ID,
		Name:          "Linen shirt",
		FobPrice:      dec("1200"),
		FreightCharge: dec("80"),
		Attributes:    []AttributeRequest{{Name: "Size", Values: "S, M, L"}},
	})
	s.Require().NoError(err)
	s.Equal([]string{order.ID}, result.AffectedOrders)

	stored, err := s.orders.Get(order.ID)
	s.Require().NoError(err)
	s.equalDecimal("160", stored.Items[0].FreightTotal)
	s.equalDecimal("2000", stored.Items[0].FobTotal)
}

func (s *ServicesTestSuite) TestRecordStockAndReconcile() {
	s.createOrder(3, models.SelectedAttribute{Name: "Size", Value: "M"}, models.SelectedAttribute{Name: "Color", Value: "Red"})

	_, err := s.products.RecordStockReceived(s.ctx, s.shirt.ID, &StockReceivedRequest{
		SelectedAttributes: []models.SelectedAttribute{{Name: "Color", Value: "Red"}, {Name: "Size", Value: "M"}},
		Quantity:           5,
	})
	s.Require().NoError(err)

	rec, err := s.products.Reconcile(s.shirt.ID)
	s.Require().NoError(err)
	s.Equal(3, rec.TotalOrdered)
	s.Equal(5, rec.TotalReceived)
	s.Equal(0, rec.RemainingToReceive)
	s.Equal(2, rec.SurplusByVariant["Color:Red, Size:M"])

	_, err = s.products.RecordStockReceived(s.ctx, s.shirt.ID, &StockReceivedRequest{Quantity: -9})
	s.ErrorIs(err, ErrValidation)
}

func (s *ServicesTestSuite) TestDeleteProductOnOrderIsRejected() {
	s.createOrder(1)

	err := s.products.Delete(s.ctx, s.shirt.ID)
	s.ErrorIs(err, ErrValidation)
}
