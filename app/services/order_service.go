package services

import (
	"errors"
	"fmt"
	"math/rand"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/voltkart/app/jobs"
	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/app/repositories"
	"github.com/shashiranjanraj/voltkart/pkg/collection"
	"github.com/shashiranjanraj/voltkart/pkg/database"
	"github.com/shashiranjanraj/voltkart/pkg/event"
	"github.com/shashiranjanraj/voltkart/pkg/logger"
	"github.com/shashiranjanraj/voltkart/pkg/metrics"
	"github.com/shashiranjanraj/voltkart/pkg/money"
	"github.com/shashiranjanraj/voltkart/pkg/queue"
)

// Events fired by the order workflow.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusUpdated = "order.status_updated"
)

// OrderCreatedPayload is the event payload for EventOrderCreated.
type OrderCreatedPayload struct {
	OrderID      string      `json:"order_id"`
	CustomerName string      `json:"customer_name"`
	TotalAmount  money.Money `json:"total_amount"`
	Qty          int         `json:"qty"`
}

// OrderStatusPayload is the event payload for EventOrderStatusUpdated.
type OrderStatusPayload struct {
	OrderID string             `json:"order_id"`
	From    models.OrderStatus `json:"from"`
	To      models.OrderStatus `json:"to"`
}

// OrderItemInput is one requested line in a create-order call.
type OrderItemInput struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity"`
}

// CreateOrderInput is the create-order request body.
type CreateOrderInput struct {
	CustomerName  string           `json:"customer_name"  validate:"required,max=255"`
	CustomerEmail string           `json:"customer_email" validate:"nullable,email"`
	ContactNumber string           `json:"contact_number" validate:"nullable,max=50"`
	PaymentStatus string           `json:"payment_status" validate:"nullable,in=Paid,Pending,COD"`
	Address       string           `json:"address"        validate:"nullable,max=1000"`
	Items         []OrderItemInput `json:"items"`
}

// CreateOrderResult is what a successful create-order call returns.
type CreateOrderResult struct {
	OrderID     string      `json:"order_id"`
	TotalAmount money.Money `json:"total_amount"`
	TotalQty    int         `json:"total_qty"`
}

// OrderSummary is one row of an order listing: the aggregate plus a
// representative product image for the front-end card.
type OrderSummary struct {
	models.Order
	Image string `json:"image"`
}

// OrderService implements the order workflow and the fulfillment state
// machine on top of the repositories.
type OrderService struct {
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
}

func NewOrderService() *OrderService {
	return &OrderService{
		orders:   repositories.NewOrderRepository(),
		products: repositories.NewProductRepository(),
	}
}

// mergedItem is one line after duplicate product ids are combined.
type mergedItem struct {
	product  models.Product
	quantity int
}

// Create validates the request, merges duplicate lines, checks stock, and
// commits the whole aggregate in one transaction. The stock decrement is a
// guarded single-statement update per item, so two concurrent orders can
// never drive stock negative: the slower one fails its guard and the whole
// transaction rolls back.
func (s *OrderService) Create(userID uint, input CreateOrderInput) (CreateOrderResult, error) {
	if input.CustomerName == "" {
		metrics.OrdersRejected.WithLabelValues("validation").Inc()
		return CreateOrderResult{}, NewValidationError("customer_name", "The customer_name field is required.")
	}
	if len(input.Items) == 0 {
		metrics.OrdersRejected.WithLabelValues("validation").Inc()
		return CreateOrderResult{}, NewValidationError("items", "The items field must be a non-empty list.")
	}

	merged, err := s.mergeAndValidate(input.Items)
	if err != nil {
		return CreateOrderResult{}, err
	}

	var totalAmount money.Money
	totalQty := 0
	for _, m := range merged {
		totalAmount = totalAmount.Add(m.product.Price.Mul(m.quantity))
		totalQty += m.quantity
	}

	orderID, err := s.generateOrderID()
	if err != nil {
		return CreateOrderResult{}, err
	}

	order := models.Order{
		OrderID:       orderID,
		UserID:        userID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		ContactNumber: input.ContactNumber,
		TotalAmount:   totalAmount,
		Qty:           totalQty,
		PaymentStatus: defaultString(input.PaymentStatus, models.PaymentPending),
		OrderStatus:   models.StatusPending,
		Address:       defaultString(input.Address, "-"),
		Items: collection.Map(merged, func(m mergedItem) models.OrderItem {
			return models.OrderItem{
				ProductID:   m.product.ID,
				ProductName: m.product.Name,
				UnitPrice:   m.product.Price,
				Quantity:    m.quantity,
			}
		}),
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.orders.Create(tx, &order); err != nil {
			return err
		}
		for _, m := range merged {
			ok, err := s.products.DecrementStock(tx, m.product.ID, m.quantity)
			if err != nil {
				return err
			}
			if !ok {
				return &ConflictError{
					Message: fmt.Sprintf("Insufficient stock for product %q", m.product.Name),
				}
			}
		}
		return nil
	})
	if err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			metrics.OrdersRejected.WithLabelValues("insufficient_stock").Inc()
			return CreateOrderResult{}, conflict
		}
		return CreateOrderResult{}, err
	}

	metrics.OrdersCreated.Inc()
	logger.Info("order created",
		"order_id", order.OrderID, "total", order.TotalAmount.String(), "qty", order.Qty)

	event.FireAsync(EventOrderCreated, OrderCreatedPayload{
		OrderID:      order.OrderID,
		CustomerName: order.CustomerName,
		TotalAmount:  order.TotalAmount,
		Qty:          order.Qty,
	})

	if order.CustomerEmail != "" {
		job := &jobs.OrderConfirmationJob{
			OrderID:      order.OrderID,
			Email:        order.CustomerEmail,
			CustomerName: order.CustomerName,
			Total:        order.TotalAmount.String(),
			Qty:          order.Qty,
		}
		if err := queue.Dispatch(job); err != nil {
			logger.Error("order: confirmation dispatch failed", "order_id", order.OrderID, "error", err)
		}
	}

	return CreateOrderResult{
		OrderID:     order.OrderID,
		TotalAmount: order.TotalAmount,
		TotalQty:    order.Qty,
	}, nil
}

// mergeAndValidate combines duplicate product lines, then checks quantity,
// existence/active flag, and stock for every merged line. Order of first
// appearance is preserved so error messages and line items are predictable.
func (s *OrderService) mergeAndValidate(items []OrderItemInput) ([]mergedItem, error) {
	quantities := make(map[uint]int, len(items))
	var order []uint
	for _, item := range items {
		if _, seen := quantities[item.ProductID]; !seen {
			order = append(order, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}

	merged := make([]mergedItem, 0, len(order))
	for _, productID := range order {
		qty := quantities[productID]
		if qty <= 0 {
			metrics.OrdersRejected.WithLabelValues("validation").Inc()
			return nil, NewValidationError("items",
				fmt.Sprintf("Quantity for product %d must be a positive integer.", productID))
		}

		product, err := s.products.FindActive(productID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.OrdersRejected.WithLabelValues("not_found").Inc()
			return nil, &NotFoundError{Resource: "Product", ID: fmt.Sprint(productID)}
		}
		if err != nil {
			return nil, err
		}

		if qty > product.Stock {
			metrics.OrdersRejected.WithLabelValues("insufficient_stock").Inc()
			return nil, &ConflictError{
				Message: fmt.Sprintf("Insufficient stock for product %q", product.Name),
			}
		}

		merged = append(merged, mergedItem{product: product, quantity: qty})
	}

	return merged, nil
}

// generateOrderID produces "ORD" plus nine random digits, retrying on the
// rare collision with an existing order.
func (s *OrderService) generateOrderID() (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		id := fmt.Sprintf("ORD%09d", rand.Intn(1_000_000_000))
		taken, err := s.orders.OrderIDExists(id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("order: could not generate a unique order id")
}

// All returns every order, newest first, with a representative image per
// order (the primary image of the first line's product).
func (s *OrderService) All(month, year int) ([]OrderSummary, error) {
	orders, err := s.orders.All(month, year)
	if err != nil {
		return nil, err
	}
	return s.summarize(orders)
}

// ForUser returns one customer's orders, newest first.
func (s *OrderService) ForUser(userID uint) ([]OrderSummary, error) {
	orders, err := s.orders.ByUser(userID)
	if err != nil {
		return nil, err
	}
	return s.summarize(orders)
}

// Get loads the full aggregate by external order id.
func (s *OrderService) Get(orderID string) (models.Order, error) {
	order, err := s.orders.FindByOrderID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, &NotFoundError{Resource: "Order", ID: orderID}
	}
	return order, err
}

// UpdateStatus moves an order through the fulfillment state machine.
// Illegal jumps (including any transition out of Delivered or Cancelled)
// return InvalidTransitionError. Stock is not restored on cancellation.
func (s *OrderService) UpdateStatus(orderID, target string) (models.Order, error) {
	to, known := models.ParseOrderStatus(target)
	if !known {
		return models.Order{}, NewValidationError("status",
			fmt.Sprintf("Unknown order status %q.", target))
	}

	order, err := s.Get(orderID)
	if err != nil {
		return models.Order{}, err
	}

	from := order.OrderStatus
	if !from.CanTransitionTo(to) {
		return models.Order{}, &models.InvalidTransitionError{From: from, To: to}
	}

	ok, err := s.orders.UpdateStatus(order.ID, from, to)
	if err != nil {
		return models.Order{}, err
	}
	if !ok {
		// Lost a race with another status update; the read state is stale.
		return models.Order{}, &ConflictError{Message: "Order status changed concurrently, retry"}
	}

	order.OrderStatus = to
	metrics.OrderStatusUpdates.WithLabelValues(string(to)).Inc()
	logger.Info("order status updated", "order_id", orderID, "from", from, "to", to)

	event.FireAsync(EventOrderStatusUpdated, OrderStatusPayload{
		OrderID: orderID,
		From:    from,
		To:      to,
	})

	return order, nil
}

// summarize attaches a representative product image to each order.
func (s *OrderService) summarize(orders []models.Order) ([]OrderSummary, error) {
	firstProducts := collection.Map(
		collection.Filter(orders, func(o models.Order) bool { return len(o.Items) > 0 }),
		func(o models.Order) uint { return o.Items[0].ProductID },
	)

	images, err := s.products.PrimaryImages(collection.Unique(firstProducts))
	if err != nil {
		return nil, err
	}

	return collection.Map(orders, func(o models.Order) OrderSummary {
		summary := OrderSummary{Order: o}
		if len(o.Items) > 0 {
			summary.Image = images[o.Items[0].ProductID]
		}
		return summary
	}), nil
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
