// internal/models/common.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The desktop shell and backup files carry money as plain JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// Base fields shared by every stored record
type BaseModel struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Enums
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleOrderEntry Role = "ORDER_ENTRY"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleOrderEntry
}

type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "DRAFT"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusArrived   OrderStatus = "ARRIVED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

var orderStatusRank = map[OrderStatus]int{
	OrderStatusDraft:     0,
	OrderStatusConfirmed: 1,
	OrderStatusShipped:   2,
	OrderStatusArrived:   3,
	OrderStatusDelivered: 4,
}

// Rank returns the position of the status in the lifecycle, or -1 for unknown values.
func (s OrderStatus) Rank() int {
	if r, ok := orderStatusRank[s]; ok {
		return r
	}
	return -1
}

type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "UNPAID"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

type CatalogStatus string

const (
	CatalogStatusOpen   CatalogStatus = "OPEN"
	CatalogStatusClosed CatalogStatus = "CLOSED"
)
