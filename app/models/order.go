package models

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/voltkart/pkg/money"
)

// OrderStatus is a fulfillment state.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusAccept    OrderStatus = "Accept"
	StatusPacked    OrderStatus = "Packed"
	StatusShipped   OrderStatus = "Shipped"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

// Payment statuses accepted on order creation.
const (
	PaymentPaid    = "Paid"
	PaymentPending = "Pending"
	PaymentCOD     = "COD"
)

// transitions is the forward-only fulfillment table. Delivered and Cancelled
// are terminal; Cancelled is reachable from Pending only.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusAccept, StatusCancelled},
	StatusAccept:    {StatusPacked},
	StatusPacked:    {StatusShipped},
	StatusShipped:   {StatusDelivered},
	StatusDelivered: {},
	StatusCancelled: {},
}

// ParseOrderStatus maps a raw string to a known status.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	st := OrderStatus(s)
	_, ok := transitions[st]
	return st, ok
}

// CanTransitionTo reports whether moving from s to target is legal.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s OrderStatus) IsTerminal() bool { return len(transitions[s]) == 0 }

// InvalidTransitionError rejects an illegal fulfillment jump.
type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %s to %s", e.From, e.To)
}

// Order plus its OrderItems form one aggregate: items are created in the
// same transaction as the order and removed only by cascading delete.
type Order struct {
	gorm.Model
	OrderID       string      `gorm:"uniqueIndex;size:20;not null"     json:"order_id"`
	UserID        uint        `gorm:"index"                            json:"user_id"`
	CustomerName  string      `gorm:"size:255;not null"                json:"customer_name"`
	CustomerEmail string      `gorm:"size:255"                         json:"customer_email"`
	ContactNumber string      `gorm:"size:50"                          json:"contact_number"`
	TotalAmount   money.Money `gorm:"not null"                         json:"total_amount"`
	Qty           int         `gorm:"not null"                         json:"qty"`
	PaymentStatus string      `gorm:"size:50;default:Pending"          json:"payment_status"`
	OrderStatus   OrderStatus `gorm:"size:50;default:Pending;index"    json:"order_status"`
	Address       string      `gorm:"size:1000"                        json:"address"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// OrderItem snapshots the product name and unit price at order time, so a
// later catalogue edit never rewrites order history.
type OrderItem struct {
	gorm.Model
	OrderID     uint        `gorm:"not null;index"     json:"-"`
	ProductID   uint        `gorm:"not null;index"     json:"product_id"`
	ProductName string      `gorm:"size:255;not null"  json:"product_name"`
	UnitPrice   money.Money `gorm:"not null"           json:"unit_price"`
	Quantity    int         `gorm:"not null"           json:"quantity"`
}

// LineTotal is unit price times quantity in exact paise.
func (i OrderItem) LineTotal() money.Money { return i.UnitPrice.Mul(i.Quantity) }
