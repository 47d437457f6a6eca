// internal/ledger/allocator_test.go
package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/backend/internal/models"
)

var testClients = []models.Client{
	{BaseModel: models.BaseModel{ID: "c-empty"}, Name: ""},
	{BaseModel: models.BaseModel{ID: "c-jane"}, Name: "Jane Wanjiru"},
	{BaseModel: models.BaseModel{ID: "c-john"}, Name: "John"},
}

func payment(amount, payer, clientID string) models.PaymentTransaction {
	return models.PaymentTransaction{Amount: dec(amount), PayerName: payer, ClientID: clientID}
}

func TestApplyPaymentPartialFob(t *testing.T) {
	orders := []models.Order{testOrder("o1", "c-jane", testItem("p1", 1, "1000", "500"))}

	updated, alloc := ApplyPayment(payment("700", "JANE WANJIRU", ""), orders, testClients)

	require.Len(t, updated, 1)
	assertDecimal(t, "700", updated[0].TotalFobPaid)
	assertDecimal(t, "0", updated[0].TotalFreightPaid)
	assert.Equal(t, models.PaymentStatusPartial, updated[0].FobPaymentStatus)
	assert.Equal(t, models.PaymentStatusUnpaid, updated[0].FreightPaymentStatus)

	assert.Equal(t, "c-jane", alloc.ClientID)
	require.Len(t, alloc.Orders, 1)
	assertDecimal(t, "700", alloc.Orders[0].FobApplied)
	assertDecimal(t, "0", alloc.Orders[0].FreightApplied)
}

func TestApplyPaymentSpillsIntoFreight(t *testing.T) {
	orders := []models.Order{testOrder("o1", "c-jane", testItem("p1", 1, "1000", "500"))}

	updated, _ := ApplyPayment(payment("1300", "Jane Wanjiru", ""), orders, testClients)

	assertDecimal(t, "1000", updated[0].TotalFobPaid)
	assertDecimal(t, "300", updated[0].TotalFreightPaid)
	assert.Equal(t, models.PaymentStatusPaid, updated[0].FobPaymentStatus)
	assert.Equal(t, models.PaymentStatusPartial, updated[0].FreightPaymentStatus)
}

func TestApplyPaymentFreightIsUncapped(t *testing.T) {
	o := testOrder("o1", "c-jane", testItem("p1", 1, "1000", "500"))
	o.TotalFobPaid = dec("1000")

	updated, _ := ApplyPayment(payment("800", "", "c-jane"), []models.Order{o}, testClients)

	assertDecimal(t, "800", updated[0].TotalFreightPaid)
	assert.Equal(t, models.PaymentStatusPaid, updated[0].FreightPaymentStatus)
}

func TestApplyPaymentResetsRemainingPerOrder(t *testing.T) {
	orders := []models.Order{
		testOrder("o1", "c-jane", testItem("p1", 1, "1000", "500")),
		testOrder("o2", "c-jane", testItem("p2", 1, "400", "100")),
	}

	updated, alloc := ApplyPayment(payment("600", "jane wanjiru", ""), orders, testClients)

	assertDecimal(t, "600", updated[0].TotalFobPaid)
	assertDecimal(t, "400", updated[1].TotalFobPaid)
	assertDecimal(t, "200", updated[1].TotalFreightPaid)
	assert.Len(t, alloc.Orders, 2)
}

func TestApplyPaymentSkipsLockedDeliveredAndOtherClients(t *testing.T) {
	locked := testOrder("locked", "c-jane", testItem("p1", 1, "1000", "500"))
	locked.IsLocked = true
	delivered := testOrder("delivered", "c-jane", testItem("p1", 1, "1000", "500"))
	delivered.Status = models.OrderStatusDelivered
	other := testOrder("other", "c-john", testItem("p1", 1, "1000", "500"))

	orders := []models.Order{locked, delivered, other}
	updated, alloc := ApplyPayment(payment("500", "Jane Wanjiru", ""), orders, testClients)

	assert.Empty(t, alloc.Orders)
	for _, o := range updated {
		assertDecimal(t, "0", o.TotalFobPaid, o.ID)
		assertDecimal(t, "0", o.TotalFreightPaid, o.ID)
	}
}

func TestApplyPaymentDoesNotMutateInput(t *testing.T) {
	orders := []models.Order{testOrder("o1", "c-jane", testItem("p1", 1, "1000", "500"))}

	ApplyPayment(payment("700", "Jane Wanjiru", ""), orders, testClients)

	assertDecimal(t, "0", orders[0].TotalFobPaid)
	assert.Equal(t, models.PaymentStatusUnpaid, orders[0].FobPaymentStatus)
}

func TestApplyPaymentZeroCostOrderNeverPaid(t *testing.T) {
	orders := []models.Order{testOrder("o1", "c-jane", testItem("p1", 1, "0", "0"))}

	updated, _ := ApplyPayment(payment("100", "Jane Wanjiru", ""), orders, testClients)

	assert.Equal(t, models.PaymentStatusUnpaid, updated[0].FobPaymentStatus)
	assertDecimal(t, "100", updated[0].TotalFreightPaid)
	assert.Equal(t, models.PaymentStatusPartial, updated[0].FreightPaymentStatus)
}

func TestMatchClient(t *testing.T) {
	id, ok := MatchClient(payment("1", "Payment from JOHN DOE", ""), testClients)
	assert.True(t, ok)
	assert.Equal(t, "c-john", id)

	id, ok = MatchClient(payment("1", "someone", "c-explicit"), testClients)
	assert.True(t, ok)
	assert.Equal(t, "c-explicit", id)

	_, ok = MatchClient(payment("1", "Unknown Payer", ""), testClients)
	assert.False(t, ok)

	_, ok = MatchClient(payment("1", "", ""), testClients)
	assert.False(t, ok)
}

func TestApplyPaymentUnmatched(t *testing.T) {
	orders := []models.Order{testOrder("o1", "c-jane", testItem("p1", 1, "1000", "500"))}

	updated, alloc := ApplyPayment(payment("700", "Nobody", ""), orders, testClients)

	assert.Empty(t, alloc.ClientID)
	assert.Empty(t, alloc.Orders)
	assertDecimal(t, "0", updated[0].TotalFobPaid)
}
