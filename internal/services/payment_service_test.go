// internal/services/payment_service_test.go
package services

import (
	"github.com/shopledger/backend/internal/models"
	"github.com/shopledger/backend/internal/utils"
)

const janeReceipt = "QFT4XYZ12A Confirmed. Ksh1,300.00 received from JANE WANJIRU 0712345678 on 3/4/24 at 9:15 AM. New M-PESA balance is Ksh12,000.00."

func (s *ServicesTestSuite) TestRecordPaymentFromReceipt() {
	order := s.createOrder(1)

	payment, err := s.payments.Record(s.ctx, &RecordPaymentRequest{RawMessage: janeReceipt})
	s.Require().NoError(err)

	s.Equal("QFT4XYZ12A", payment.TransactionCode)
	s.Equal("JANE WANJIRU", payment.PayerName)
	s.Equal(s.client.ID, payment.ClientID)
	s.equalDecimal("1300", payment.Amount)
	s.Require().Len(payment.Allocations, 1)
	s.equalDecimal("1000", payment.Allocations[0].FobApplied)
	s.equalDecimal("300", payment.Allocations[0].FreightApplied)

	stored, err := s.orders.Get(order.ID)
	s.Require().NoError(err)
	s.Equal(models.PaymentStatusPaid, stored.FobPaymentStatus)
	s.Equal(models.PaymentStatusPaid, stored.FreightPaymentStatus)
	s.equalDecimal("300", stored.TotalFreightPaid)
}

func (s *ServicesTestSuite) TestRecordPaymentRejectsDuplicates() {
	_, err := s.payments.Record(s.ctx, &RecordPaymentRequest{RawMessage: janeReceipt})
	s.Require().NoError(err)

	amount := dec("50")
	_, err = s.payments.Record(s.ctx, &RecordPaymentRequest{Amount: &amount, TransactionCode: "qft4xyz12a"})
	s.ErrorIs(err, ErrDuplicatePayment)
}

func (s *ServicesTestSuite) TestRecordPaymentValidation() {
	zero := dec("0")
	_, err := s.payments.Record(s.ctx, &RecordPaymentRequest{Amount: &zero, TransactionCode: "ABC12345"})
	s.ErrorIs(err, ErrValidation)

	amount := dec("100")
	_, err = s.payments.Record(s.ctx, &RecordPaymentRequest{Amount: &amount})
	s.ErrorIs(err, ErrValidation)

	_, err = s.payments.Record(s.ctx, &RecordPaymentRequest{RawMessage: "hello there"})
	s.ErrorIs(err, ErrUnparseableReceipt)

	_, err = s.payments.Record(s.ctx, &RecordPaymentRequest{Amount: &amount, TransactionCode: "ABC12345", ClientID: "missing"})
	s.ErrorIs(err, ErrClientNotFound)
}

func (s *ServicesTestSuite) TestUnmatchedPaymentIsListedAsUnattributed() {
	order := s.createOrder(1)
	amount := dec("500")

	payment, err := s.payments.Record(s.ctx, &RecordPaymentRequest{Amount: &amount, TransactionCode: "ZZZ99999", PayerName: "Peter Otieno"})
	s.Require().NoError(err)
	s.False(payment.Attributed())

	stored, err := s.orders.Get(order.ID)
	s.Require().NoError(err)
	s.True(stored.TotalFobPaid.IsZero())

	page := s.payments.ListUnattributed(utils.PaginationParams{Page: 1, Limit: 10, Order: "desc", Search: "otieno"})
	s.Equal(int64(1), page.Total)
	s.Equal("ZZZ99999", page.Data.([]models.PaymentTransaction)[0].TransactionCode)
}

func (s *ServicesTestSuite) TestLockedOrderIgnoresPayments() {
	order := s.createOrder(1)
	_, err := s.orders.Lock(s.ctx, order.ID)
	s.Require().NoError(err)

	amount := dec("500")
	payment, err := s.payments.Record(s.ctx, &RecordPaymentRequest{Amount: &amount, TransactionCode: "LCK12345", ClientID: s.client.ID})
	s.Require().NoError(err)
	s.Empty(payment.Allocations)

	stored, err := s.orders.Get(order.ID)
	s.Require().NoError(err)
	s.True(stored.TotalFobPaid.IsZero())
}
