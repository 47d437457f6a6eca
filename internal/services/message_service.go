// internal/services/message_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/models"
	"github.com/shopledger/backend/internal/store"
)

type MessageKind string

const (
	MessageInvoice  MessageKind = "invoice"
	MessageReminder MessageKind = "reminder"
)

type MessageDraft struct {
	OrderID    string      `json:"order_id"`
	Kind       MessageKind `json:"kind"`
	ClientName string      `json:"client_name"`
	Phone      string      `json:"phone"`
	Text       string      `json:"text"`
}

type messageData struct {
	Shop           models.ShopSettings
	Client         models.Client
	Order          models.Order
	FobCost        decimal.Decimal
	FreightCost    decimal.Decimal
	FobBalance     decimal.Decimal
	FreightBalance decimal.Decimal
}

var messageTemplates = template.Must(template.New("messages").Funcs(template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
}).Parse(`
{{- define "invoice" -}}
Hello {{.Client.Name}}, thank you for your order with {{.Shop.BusinessName}}.
{{range .Order.Items}}- {{.ProductName}} x{{.Quantity}}: {{money .FobTotal}}
{{end -}}
Goods (FOB): KES {{money .FobCost}}
Freight: KES {{money .FreightCost}}
{{template "accounts" .}}
{{- end}}

{{- define "reminder" -}}
Hello {{.Client.Name}}, this is a reminder from {{.Shop.BusinessName}}.
{{if .FobBalance.IsPositive}}Goods balance due: KES {{money .FobBalance}}
{{end -}}
{{if .FreightBalance.IsPositive}}Freight balance due: KES {{money .FreightBalance}}
{{end -}}
{{template "accounts" .}}
{{- end}}

{{- define "accounts" -}}
{{if .Shop.FobAccount.Paybill}}Pay goods to Paybill {{.Shop.FobAccount.Paybill}}, account {{.Shop.FobAccount.Account}}.
{{end -}}
{{if .Shop.FreightAccount.Paybill}}Pay freight to Paybill {{.Shop.FreightAccount.Paybill}}, account {{.Shop.FreightAccount.Account}}.
{{end -}}
{{range .Shop.ContactNumbers}}Call {{.}}
{{end -}}
{{- end}}
`))

// MessageService drafts the text a shop sends to a client about an order.
type MessageService struct {
	repo            *store.Repository
	settingsService *SettingsService
}

func NewMessageService(repo *store.Repository, settingsService *SettingsService) *MessageService {
	return &MessageService{
		repo:            repo,
		settingsService: settingsService,
	}
}

func (s *MessageService) Draft(ctx context.Context, orderID string, kind MessageKind) (*MessageDraft, error) {
	if kind == "" {
		kind = MessageInvoice
	}
	if kind != MessageInvoice && kind != MessageReminder {
		return nil, validationError("unknown message kind %q", kind)
	}

	settings, err := s.settingsService.Get(ctx)
	if err != nil {
		return nil, err
	}

	data := messageData{Shop: *settings}
	err = s.repo.Read(func(st *store.State) error {
		oi := st.OrderIndex(orderID)
		if oi < 0 {
			return ErrOrderNotFound
		}
		data.Order = st.Orders[oi].Clone()
		ci := st.ClientIndex(data.Order.ClientID)
		if ci < 0 {
			return ErrClientNotFound
		}
		data.Client = st.Clients[ci]
		return nil
	})
	if err != nil {
		return nil, err
	}

	data.FobCost = data.Order.FobCost()
	data.FreightCost = data.Order.FreightCost()
	data.FobBalance = outstanding(data.FobCost, data.Order.TotalFobPaid)
	data.FreightBalance = outstanding(data.FreightCost, data.Order.TotalFreightPaid)

	var buf bytes.Buffer
	if err := messageTemplates.ExecuteTemplate(&buf, string(kind), data); err != nil {
		return nil, fmt.Errorf("failed to render %s message: %w", kind, err)
	}

	return &MessageDraft{
		OrderID:    orderID,
		Kind:       kind,
		ClientName: data.Client.Name,
		Phone:      data.Client.Phone,
		Text:       buf.String(),
	}, nil
}
