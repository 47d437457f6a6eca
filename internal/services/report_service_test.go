// internal/services/report_service_test.go
package services

import (
	"strings"

	"github.com/shopledger/backend/internal/models"
)

func (s *ServicesTestSuite) TestSummaryAndStatement() {
	s.createOrder(2)
	amount := dec("700")
	_, err := s.payments.Record(s.ctx, &RecordPaymentRequest{Amount: &amount, TransactionCode: "RPT00001", PayerName: "jane wanjiru"})
	s.Require().NoError(err)
	stray := dec("50")
	_, err = s.payments.Record(s.ctx, &RecordPaymentRequest{Amount: &stray, TransactionCode: "RPT00002", PayerName: "unknown"})
	s.Require().NoError(err)

	summary := s.reports.Summary()
	s.Require().Len(summary.Catalogs, 1)
	cs := summary.Catalogs[0]
	s.Equal(1, cs.OrderCount)
	s.equalDecimal("2000", cs.FobCost)
	s.equalDecimal("1300", cs.FobOutstanding)
	s.equalDecimal("200", cs.FreightOutstanding)
	s.equalDecimal("1500", summary.TotalOutstanding)
	s.equalDecimal("750", summary.TotalReceived)
	s.Equal(1, summary.UnattributedPayments)
	s.Equal(1, summary.OrdersByStatus[models.OrderStatusDraft])

	statement, err := s.reports.ClientStatement(s.client.ID)
	s.Require().NoError(err)
	s.Len(statement.Orders, 1)
	s.Len(statement.Payments, 1)
	s.equalDecimal("700", statement.TotalPaid)
	s.equalDecimal("1500", statement.TotalBalance)

	_, err = s.reports.ClientStatement("missing")
	s.ErrorIs(err, ErrClientNotFound)
}

func (s *ServicesTestSuite) TestDraftMessages() {
	order := s.createOrder(1)
	_, err := s.settings.Update(s.ctx, &UpdateSettingsRequest{
		BusinessName:   "Wanjiru Imports",
		ContactNumbers: []string{"0711000111"},
		FobAccount:     PaybillAccountRequest{Paybill: "247247", Account: "GOODS"},
		FreightAccount: PaybillAccountRequest{Paybill: "522522", Account: "FREIGHT"},
	})
	s.Require().NoError(err)

	invoice, err := s.messages.Draft(s.ctx, order.ID, MessageInvoice)
	s.Require().NoError(err)
	s.Equal("Jane Wanjiru", invoice.ClientName)
	s.Contains(invoice.Text, "Wanjiru Imports")
	s.Contains(invoice.Text, "Linen shirt x1: 1000.00")
	s.Contains(invoice.Text, "Paybill 247247, account GOODS")
	s.Contains(invoice.Text, "Call 0711000111")

	reminder, err := s.messages.Draft(s.ctx, order.ID, MessageReminder)
	s.Require().NoError(err)
	s.Contains(reminder.Text, "Goods balance due: KES 1000.00")
	s.Contains(reminder.Text, "Freight balance due: KES 100.00")

	_, err = s.messages.Draft(s.ctx, order.ID, "poem")
	s.ErrorIs(err, ErrValidation)

	s.False(strings.Contains(invoice.Text, "<no value>"))
}

func (s *ServicesTestSuite) TestSettingsCreatedLazily() {
	s.Nil(s.repo.Snapshot().Settings)

	settings, err := s.settings.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal("My Shop", settings.BusinessName)
	s.NotNil(s.repo.Snapshot().Settings)
}
