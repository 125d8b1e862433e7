package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/pkg/orm"
)

// OrderRepository handles database operations for the order aggregate.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create inserts an order with its items inside the caller's transaction.
func (r *OrderRepository) Create(tx *gorm.DB, order *models.Order) error {
	return orm.Use(tx).Create(order)
}

// OrderIDExists reports whether an external order id is already taken.
func (r *OrderRepository) OrderIDExists(orderID string) (bool, error) {
	n, err := orm.DB().Model(&models.Order{}).Where("order_id = ?", orderID).Count()
	return n > 0, err
}

// All returns orders newest first with their items, optionally filtered to
// one calendar month.
func (r *OrderRepository) All(month, year int) ([]models.Order, error) {
	q := orm.DB().Model(&models.Order{})
	q = filterMonth(q, month, year)

	var orders []models.Order
	err := q.Preload("Items").Order("created_at desc").Get(&orders)
	return orders, err
}

// ByUser returns one customer's orders, newest first.
func (r *OrderRepository) ByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := orm.DB().Model(&models.Order{}).
		Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at desc").
		Get(&orders)
	return orders, err
}

// FindByOrderID loads the full aggregate by external order id.
func (r *OrderRepository) FindByOrderID(orderID string) (models.Order, error) {
	var order models.Order
	err := orm.DB().Model(&models.Order{}).
		Where("order_id = ?", orderID).
		Preload("Items").
		First(&order)
	return order, err
}

// UpdateStatus moves an order to a new status, guarded on the status the
// caller read. Zero rows means a concurrent update won; the caller should
// re-read and retry or fail.
func (r *OrderRepository) UpdateStatus(id uint, from, to models.OrderStatus) (bool, error) {
	n, err := orm.DB().Model(&models.Order{}).
		Where("id = ? AND order_status = ?", id, from).
		Updates(map[string]interface{}{"order_status": to})
	return n > 0, err
}

// Recent returns the n most recent orders with items.
func (r *OrderRepository) Recent(n int) ([]models.Order, error) {
	var orders []models.Order
	err := orm.DB().Model(&models.Order{}).
		Preload("Items").
		Order("created_at desc").
		Limit(n).
		Get(&orders)
	return orders, err
}

// CountByStatus returns how many orders sit in the given status, optionally
// scoped to one calendar month.
func (r *OrderRepository) CountByStatus(status models.OrderStatus, month, year int) (int64, error) {
	q := orm.DB().Model(&models.Order{}).Where("order_status = ?", status)
	q = filterMonth(q, month, year)
	return q.Count()
}

// Count returns the total number of orders, optionally scoped to one month.
func (r *OrderRepository) Count(month, year int) (int64, error) {
	q := orm.DB().Model(&models.Order{})
	q = filterMonth(q, month, year)
	return q.Count()
}

// Delivered returns delivered orders with items, optionally scoped to one
// month. Used by accounting and CSV export.
func (r *OrderRepository) Delivered(month, year int) ([]models.Order, error) {
	q := orm.DB().Model(&models.Order{}).Where("order_status = ?", models.StatusDelivered)
	q = filterMonth(q, month, year)

	var orders []models.Order
	err := q.Preload("Items").Order("created_at desc").Get(&orders)
	return orders, err
}

// DeliveredBetween returns delivered orders in [from, to), for the monthly
// profit series.
func (r *OrderRepository) DeliveredBetween(from, to time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := orm.DB().Model(&models.Order{}).
		Where("order_status = ? AND created_at >= ? AND created_at < ?",
			models.StatusDelivered, from, to).
		Get(&orders)
	return orders, err
}

// filterMonth narrows a query to one calendar month via a created_at range,
// which works identically across every supported driver.
func filterMonth(q *orm.Query, month, year int) *orm.Query {
	if month < 1 || month > 12 || year < 2000 {
		return q
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)
	return q.Where("created_at >= ? AND created_at < ?", start, end)
}
