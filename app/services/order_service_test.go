package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/pkg/database"
	"github.com/shashiranjanraj/voltkart/pkg/money"
	"github.com/shashiranjanraj/voltkart/pkg/orm"
)

// setupDB points the global connection at a fresh in-memory SQLite database
// so the workflow runs through the real repositories and transactions.
func setupDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{}, &models.Subcategory{}, &models.Brand{},
		&models.Product{}, &models.ProductSpecification{}, &models.ProductImage{},
		&models.Order{}, &models.OrderItem{},
		&models.Review{}, &models.CartItem{}, &models.WishlistItem{},
	))

	database.DB = db
}

func createProduct(t *testing.T, name, price string, stock int) models.Product {
	t.Helper()

	p, err := money.Parse(price)
	require.NoError(t, err)

	product := models.Product{
		CategoryID: 1,
		Name:       name,
		Slug:       Slugify(name),
		SKU:        "SKU-" + Slugify(name),
		Price:      p,
		Stock:      stock,
		IsInStock:  stock > 0,
		IsActive:   true,
	}
	require.NoError(t, orm.DB().Create(&product))
	return product
}

func reload(t *testing.T, id uint) models.Product {
	t.Helper()
	var product models.Product
	require.NoError(t, orm.DB().Model(&models.Product{}).Where("id = ?", id).First(&product))
	return product
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	n, err := orm.DB().Model(model).Count()
	require.NoError(t, err)
	return n
}

func TestCreateOrderScenario(t *testing.T) {
	setupDB(t)
	svc := NewOrderService()

	// Product with stock 10 at 19.99; ordering 4 must total exactly 79.96.
	product := createProduct(t, "MCB 10kA C-Curve", "19.99", 10)

	result, err := svc.Create(1, CreateOrderInput{
		CustomerName: "Jane",
		Items:        []OrderItemInput{{ProductID: product.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	assert.Regexp(t, `^ORD\d{9}$`, result.OrderID)
	assert.Equal(t, "79.96", result.TotalAmount.String())
	assert.Equal(t, 4, result.TotalQty)

	after := reload(t, product.ID)
	assert.Equal(t, 6, after.Stock)
	assert.True(t, after.IsInStock)

	// A follow-up order for 8 against the remaining 6 must fail and leave
	// stock untouched.
	_, err = svc.Create(1, CreateOrderInput{
		CustomerName: "Jane",
		Items:        []OrderItemInput{{ProductID: product.ID, Quantity: 8}},
	})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 6, reload(t, product.ID).Stock)
	assert.Equal(t, int64(1), countRows(t, &models.Order{}))
}

func TestCreateOrderMergesDuplicateLines(t *testing.T) {
	setupDB(t)
	svc := NewOrderService()

	product := createProduct(t, "Copper Cable 2.5sqmm", "45.00", 20)

	result, err := svc.Create(1, CreateOrderInput{
		CustomerName: "Ravi",
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 2},
			{ProductID: product.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, result.TotalQty)
	assert.Equal(t, "225.00", result.TotalAmount.String())

	order, err := svc.Get(result.OrderID)
	require.NoError(t, err)
	require.Len(t, order.Items, 1, "duplicate product lines must merge into one")
	assert.Equal(t, 5, order.Items[0].Quantity)
	assert.Equal(t, 15, reload(t, product.ID).Stock)
}

func TestCreateOrderConservation(t *testing.T) {
	setupDB(t)
	svc := NewOrderService()

	a := createProduct(t, "Modular Switch", "129.50", 50)
	b := createProduct(t, "LED Panel 18W", "349.99", 50)

	result, err := svc.Create(1, CreateOrderInput{
		CustomerName: "Asha",
		Items: []OrderItemInput{
			{ProductID: a.ID, Quantity: 3},
			{ProductID: b.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	order, err := svc.Get(result.OrderID)
	require.NoError(t, err)

	var sum money.Money
	qty := 0
	for _, item := range order.Items {
		sum = sum.Add(item.LineTotal())
		qty += item.Quantity
	}
	assert.Equal(t, order.TotalAmount, sum)
	assert.Equal(t, order.Qty, qty)
	assert.Equal(t, "1088.48", order.TotalAmount.String())
}

func TestCreateOrderAllOrNothing(t *testing.T) {
	setupDB(t)
	svc := NewOrderService()

	good := createProduct(t, "Distribution Board", "899.00", 10)

	_, err := svc.Create(1, CreateOrderInput{
		CustomerName: "Jane",
		Items: []OrderItemInput{
			{ProductID: good.ID, Quantity: 2},
			{ProductID: 9999, Quantity: 1},
		},
	})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	assert.Equal(t, int64(0), countRows(t, &models.Order{}))
	assert.Equal(t, int64(0), countRows(t, &models.OrderItem{}))
	assert.Equal(t, 10, reload(t, good.ID).Stock)
}

func TestCreateOrderValidation(t *testing.T) {
	setupDB(t)
	svc := NewOrderService()
	product := createProduct(t, "Ceiling Fan", "1599.00", 5)

	var verr *ValidationError

	_, err := svc.Create(1, CreateOrderInput{
		Items: []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.ErrorAs(t, err, &verr, "missing customer name")

	_, err = svc.Create(1, CreateOrderInput{CustomerName: "Jane"})
	require.ErrorAs(t, err, &verr, "empty items")

	_, err = svc.Create(1, CreateOrderInput{
		CustomerName: "Jane",
		Items:        []OrderItemInput{{ProductID: product.ID, Quantity: 0}},
	})
	require.ErrorAs(t, err, &verr, "non-positive quantity")

	// Quantities summing to zero or below after merge are rejected too.
	_, err = svc.Create(1, CreateOrderInput{
		CustomerName: "Jane",
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 2},
			{ProductID: product.ID, Quantity: -2},
		},
	})
	require.ErrorAs(t, err, &verr)

	assert.Equal(t, 5, reload(t, product.ID).Stock)
	assert.Equal(t, int64(0), countRows(t, &models.Order{}))
}

func TestCreateOrderInactiveProduct(t *testing.T) {
	setupDB(t)
	svc := NewOrderService()

	product := createProduct(t, "Discontinued Socket", "59.00", 10)
	_, err := orm.DB().Model(&models.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{"is_active": false})
	require.NoError(t, err)

	_, err = svc.Create(1, CreateOrderInput{
		CustomerName: "Jane",
		Items:        []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestCreateOrderDefaults(t *testing.T) {
	setupDB(t)
	svc := NewOrderService()
	product := createProduct(t, "Extension Box", "499.00", 10)

	result, err := svc.Create(7, CreateOrderInput{
		CustomerName: "Jane",
		Items:        []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	order, err := svc.Get(result.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, order.PaymentStatus)
	assert.Equal(t, models.StatusPending, order.OrderStatus)
	assert.Equal(t, "-", order.Address)
	assert.Equal(t, uint(7), order.UserID)
	assert.Equal(t, "Extension Box", order.Items[0].ProductName)
}

func TestUpdateStatusWalksTheStateMachine(t *testing.T) {
	setupDB(t)
	svc := NewOrderService()
	product := createProduct(t, "Voltage Stabilizer", "2999.00", 10)

	result, err := svc.Create(1, CreateOrderInput{
		CustomerName: "Jane",
		Items:        []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	for _, status := range []string{"Accept", "Packed", "Shipped", "Delivered"} {
		order, err := svc.UpdateStatus(result.OrderID, status)
		require.NoError(t, err, "transition to %s", status)
		assert.Equal(t, models.OrderStatus(status), order.OrderStatus)
	}

	// Status change is visible on re-read.
	order, err := svc.Get(result.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, order.OrderStatus)

	// Delivered is terminal.
	_, err = svc.UpdateStatus(result.OrderID, "Pending")
	var invalid *models.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, models.StatusDelivered, invalid.From)
}

func TestUpdateStatusRejectsIllegalJumps(t *testing.T) {
	setupDB(t)
	svc := NewOrderService()
	product := createProduct(t, "Cable Tray", "750.00", 10)

	result, err := svc.Create(1, CreateOrderInput{
		CustomerName: "Jane",
		Items:        []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	var invalid *models.InvalidTransitionError
	_, err = svc.UpdateStatus(result.OrderID, "Shipped")
	require.ErrorAs(t, err, &invalid, "Pending cannot jump to Shipped")

	var verr *ValidationError
	_, err = svc.UpdateStatus(result.OrderID, "Returned")
	require.ErrorAs(t, err, &verr, "unknown status string")

	_, err = svc.UpdateStatus("ORD000000000", "Accept")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestCancelDoesNotRestoreStock(t *testing.T) {
	setupDB(t)
	svc := NewOrderService()
	product := createProduct(t, "Earthing Rod", "320.00", 10)

	result, err := svc.Create(1, CreateOrderInput{
		CustomerName: "Jane",
		Items:        []OrderItemInput{{ProductID: product.ID, Quantity: 4}},
	})
	require.NoError(t, err)
	require.Equal(t, 6, reload(t, product.ID).Stock)

	_, err = svc.UpdateStatus(result.OrderID, "Cancelled")
	require.NoError(t, err)

	// Cancellation leaves inventory alone; restock is a manual step.
	assert.Equal(t, 6, reload(t, product.ID).Stock)

	_, err = svc.UpdateStatus(result.OrderID, "Accept")
	var invalid *models.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
}

func TestForUserScopesOrders(t *testing.T) {
	setupDB(t)
	svc := NewOrderService()
	product := createProduct(t, "Smart Meter", "4500.00", 100)

	for userID := uint(1); userID <= 3; userID++ {
		_, err := svc.Create(userID, CreateOrderInput{
			CustomerName: fmt.Sprintf("Customer %d", userID),
			Items:        []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	mine, err := svc.ForUser(2)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Customer 2", mine[0].CustomerName)

	all, err := svc.All(0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
