// internal/services/payment_service.go
package services

import (
	"context"
	"sort"
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

type PaymentService struct {
	repo *store.Repository
}

// RecordPaymentRequest carries either the payment fields, the raw SMS receipt, or both.
// Fields left empty are filled from the receipt.
type RecordPaymentRequest struct {
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	PayerName       string           `json:"payer_name,omitempty" validate:"max=200"`
	ClientID        string           `json:"client_id,omitempty"`
	RawMessage      string           `json:"raw_message,omitempty" validate:"max=2000"`
	TransactionCode string           `json:"transaction_code,omitempty" validate:"max=40"`
	ReceivedAt      *time.Time       `json:"received_at,omitempty"`
}

func NewPaymentService(repo *store.Repository) *PaymentService {
	return &PaymentService{repo: repo}
}

func (req *RecordPaymentRequest) complete() error {
	if err := utils.ValidateStruct(req); err != nil {
		return invalidRequest(err)
	}

	raw := strings.TrimSpace(req.RawMessage)
	if raw != "" && (req.Amount == nil || req.TransactionCode == "" || req.PayerName == "") {
		receipt, err := ParseReceipt(raw)
		if err != nil && req.Amount == nil {
			return err
		}
		if err == nil {
			if req.Amount == nil {
				req.Amount = &receipt.Amount
			}
			if req.TransactionCode == "" {
				req.TransactionCode = receipt.Code
			}
			if req.PayerName == "" {
				req.PayerName = receipt.PayerName
			}
		}
	}

	if req.Amount == nil {
		return validationError("amount is required")
	}
	if !req.Amount.IsPositive() {
		return validationError("amount must be greater than zero")
	}
	req.TransactionCode = strings.ToUpper(strings.TrimSpace(req.TransactionCode))
	if req.TransactionCode == "" {
		return validationError("transaction code is required")
	}
	req.PayerName = strings.TrimSpace(req.PayerName)
	return nil
}

// Record stores an incoming payment and allocates it over the payer's open orders. A payment
// whose payer matches no client is still stored, without allocations.
func (s *PaymentService) Record(ctx context.Context, req *RecordPaymentRequest) (*models.PaymentTransaction, error) {
	if err := req.complete(); err != nil {
		return nil, err
	}

	now := time.Now()
	payment := models.PaymentTransaction{
		BaseModel:       models.BaseModel{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
		Amount:          *req.Amount,
		PayerName:       req.PayerName,
		ClientID:        strings.TrimSpace(req.ClientID),
		RawMessage:      req.RawMessage,
		TransactionCode: req.TransactionCode,
		ReceivedAt:      now,
	}
	if req.ReceivedAt != nil {
		payment.ReceivedAt = *req.ReceivedAt
	}

	err := s.repo.Update(ctx, func(st *store.State) error {
		for _, existing := range st.Payments {
			if strings.EqualFold(existing.TransactionCode, payment.TransactionCode) {
				return ErrDuplicatePayment
			}
		}
		if payment.ClientID != "" && st.ClientIndex(payment.ClientID) < 0 {
			return ErrClientNotFound
		}

		orders, alloc := ledger.ApplyPayment(payment, st.Orders, st.Clients)

		allocated := make(map[string]bool, len(alloc.Orders))
		for _, a := range alloc.Orders {
			allocated[a.OrderID] = true
		}
		for i := range orders {
			if allocated[orders[i].ID] {
				orders[i].UpdatedAt = now
			}
		}

		st.Orders = orders
		payment.ClientID = alloc.ClientID
		payment.Allocations = alloc.Orders
		st.Payments = append(st.Payments, payment)
		return nil
	}, store.Orders, store.Payments)
	if err != nil {
		return nil, err
	}

	entry := logrus.WithFields(logrus.Fields{
		"transaction_code": payment.TransactionCode,
		"amount":           payment.Amount.String(),
		"client_id":        payment.ClientID,
		"orders":           len(payment.Allocations),
	})
	if payment.ClientID == "" {
		entry.Warn("Payment did not match any client")
	} else {
		entry.Info("Payment allocated")
	}
	return &payment, nil
}

// ListUnattributed pages through payments that reached no order, newest first by default.
func (s *PaymentService) ListUnattributed(params utils.PaginationParams) utils.PaginationResult {
	search := strings.ToLower(strings.TrimSpace(params.Search))

	var payments []models.PaymentTransaction
	s.repo.Read(func(st *store.State) error {
		for _, p := range st.Payments {
			if p.Attributed() {
				continue
			}
			if search != "" && !strings.Contains(strings.ToLower(p.PayerName), search) &&
				!strings.Contains(strings.ToLower(p.TransactionCode), search) {
				continue
			}
			payments = append(payments, p)
		}
		return nil
	})

	sort.SliceStable(payments, func(i, j int) bool {
		if params.Order == "asc" {
			return payments[i].ReceivedAt.Before(payments[j].ReceivedAt)
		}
		return payments[i].ReceivedAt.After(payments[j].ReceivedAt)
	})

	return utils.Paginate(payments, params)
}
