package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/app/repositories"
	"github.com/shashiranjanraj/voltkart/config"
	"github.com/shashiranjanraj/voltkart/pkg/collection"
	"github.com/shashiranjanraj/voltkart/pkg/money"
	"github.com/shashiranjanraj/voltkart/pkg/workerpool"
)

// Accounting percentages applied to gross delivered sales.
const (
	DiscountPercent = 5
	TaxPercent      = 12
)

// SeriesPoint is one bucket of a chart series.
type SeriesPoint struct {
	Label string      `json:"label"`
	Value money.Money `json:"value"`
}

// TopProduct is one row of the best-sellers table.
type TopProduct struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// OrdersDashboard is the admin orders overview.
type OrdersDashboard struct {
	TotalOrders     int64         `json:"total_orders"`
	PendingOrders   int64         `json:"pending_orders"`
	DeliveredOrders int64         `json:"delivered_orders"`
	CancelledOrders int64         `json:"cancelled_orders"`
	DailySales      []SeriesPoint `json:"daily_sales"`
	TopProducts     []TopProduct  `json:"top_products"`
}

// AccountingDashboard summarises delivered sales for the books.
type AccountingDashboard struct {
	GrossSales    money.Money   `json:"gross_sales"`
	Discount      money.Money   `json:"discount"`
	Tax           money.Money   `json:"tax"`
	NetProfit     money.Money   `json:"net_profit"`
	MonthlyProfit []SeriesPoint `json:"monthly_profit"`
}

// Overview is the landing dashboard.
type Overview struct {
	TotalOrders   int64            `json:"total_orders"`
	TotalProducts int64            `json:"total_products"`
	LowStock      []models.Product `json:"low_stock"`
	RecentOrders  []models.Order   `json:"recent_orders"`
	WeeklySales   []SeriesPoint    `json:"weekly_sales"`
}

// ParcelLabel is the JSON payload handed to the external PDF/barcode
// renderer. Layout is the renderer's concern.
type ParcelLabel struct {
	OrderID       string             `json:"order_id"`
	CustomerName  string             `json:"customer_name"`
	ContactNumber string             `json:"contact_number"`
	AddressLines  []string           `json:"address_lines"`
	Items         []models.OrderItem `json:"items"`
	TotalAmount   money.Money        `json:"total_amount"`
	Qty           int                `json:"qty"`
	ScanURL       string             `json:"scan_url"`
}

// ReportService builds dashboards, CSV exports and parcel labels from the
// persisted order data. It implements no business rules of its own.
type ReportService struct {
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
}

func NewReportService() *ReportService {
	return &ReportService{
		orders:   repositories.NewOrderRepository(),
		products: repositories.NewProductRepository(),
	}
}

// Orders builds the orders dashboard, optionally scoped to one month.
func (s *ReportService) Orders(month, year int) (OrdersDashboard, error) {
	var dash OrdersDashboard
	var err error

	if dash.TotalOrders, err = s.orders.Count(month, year); err != nil {
		return dash, err
	}
	if dash.PendingOrders, err = s.orders.CountByStatus(models.StatusPending, month, year); err != nil {
		return dash, err
	}
	if dash.DeliveredOrders, err = s.orders.CountByStatus(models.StatusDelivered, month, year); err != nil {
		return dash, err
	}
	if dash.CancelledOrders, err = s.orders.CountByStatus(models.StatusCancelled, month, year); err != nil {
		return dash, err
	}

	delivered, err := s.orders.Delivered(month, year)
	if err != nil {
		return dash, err
	}

	dash.DailySales = dailySeries(delivered)
	dash.TopProducts = topProducts(delivered, 5)
	return dash, nil
}

// Accounting builds the accounting dashboard. The six monthly aggregates are
// independent queries, so they fan out on a bounded worker pool.
func (s *ReportService) Accounting(month, year int) (AccountingDashboard, error) {
	delivered, err := s.orders.Delivered(month, year)
	if err != nil {
		return AccountingDashboard{}, err
	}

	gross := collection.Reduce(delivered, money.Money(0), func(acc money.Money, o models.Order) money.Money {
		return acc.Add(o.TotalAmount)
	})

	dash := AccountingDashboard{GrossSales: gross}
	dash.Discount = gross.Percent(DiscountPercent)
	taxable := gross.Sub(dash.Discount)
	dash.Tax = taxable.Percent(TaxPercent)
	dash.NetProfit = taxable.Sub(dash.Tax)

	series, err := s.monthlyProfit(6)
	if err != nil {
		return AccountingDashboard{}, err
	}
	dash.MonthlyProfit = series

	return dash, nil
}

// monthlyProfit computes net profit per month for the last n months,
// oldest first.
func (s *ReportService) monthlyProfit(n int) ([]SeriesPoint, error) {
	pool := workerpool.New(3)
	defer pool.Shutdown()

	series := make([]SeriesPoint, n)
	errs := make([]error, n)
	var wg sync.WaitGroup

	now := time.Now()
	for i := 0; i < n; i++ {
		i := i
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, i-n+1, 0)
		end := start.AddDate(0, 1, 0)

		wg.Add(1)
		task := func() {
			defer wg.Done()

			orders, err := s.orders.DeliveredBetween(start, end)
			if err != nil {
				errs[i] = err
				return
			}

			gross := collection.Reduce(orders, money.Money(0), func(acc money.Money, o models.Order) money.Money {
				return acc.Add(o.TotalAmount)
			})
			taxable := gross.Sub(gross.Percent(DiscountPercent))
			series[i] = SeriesPoint{
				Label: start.Format("Jan 2006"),
				Value: taxable.Sub(taxable.Percent(TaxPercent)),
			}
		}

		if err := pool.Submit(task); err != nil {
			// Pool saturated; run inline rather than dropping the bucket.
			task()
		}
	}

	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return series, nil
}

// Overview builds the landing dashboard.
func (s *ReportService) Overview() (Overview, error) {
	var view Overview
	var err error

	if view.TotalOrders, err = s.orders.Count(0, 0); err != nil {
		return view, err
	}
	if view.TotalProducts, err = s.countProducts(); err != nil {
		return view, err
	}
	if view.LowStock, err = s.products.LowStock(10); err != nil {
		return view, err
	}
	if view.RecentOrders, err = s.orders.Recent(5); err != nil {
		return view, err
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	delivered, err := s.orders.DeliveredBetween(weekAgo, time.Now().Add(time.Hour))
	if err != nil {
		return view, err
	}
	view.WeeklySales = dailySeries(delivered)

	return view, nil
}

func (s *ReportService) countProducts() (int64, error) {
	products, err := s.products.Active()
	if err != nil {
		return 0, err
	}
	return int64(len(products)), nil
}

// AccountingCSV streams one row per delivered order with the discount and
// tax lines applied.
func (s *ReportService) AccountingCSV(w io.Writer, month, year int) error {
	delivered, err := s.orders.Delivered(month, year)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Order ID", "Date", "Customer", "Gross", "Discount", "Tax", "Net"}); err != nil {
		return err
	}

	for _, o := range delivered {
		discount := o.TotalAmount.Percent(DiscountPercent)
		taxable := o.TotalAmount.Sub(discount)
		tax := taxable.Percent(TaxPercent)
		net := taxable.Sub(tax)

		row := []string{
			o.OrderID,
			o.CreatedAt.Format("2006-01-02"),
			o.CustomerName,
			o.TotalAmount.String(),
			discount.String(),
			tax.String(),
			net.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// OrdersCSV streams one row per order line for every order in scope.
func (s *ReportService) OrdersCSV(w io.Writer, month, year int) error {
	orders, err := s.orders.All(month, year)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{"Order ID", "Date", "Status", "Customer", "Product", "Unit Price", "Quantity", "Line Total"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, o := range orders {
		for _, item := range o.Items {
			row := []string{
				o.OrderID,
				o.CreatedAt.Format("2006-01-02"),
				string(o.OrderStatus),
				o.CustomerName,
				item.ProductName,
				item.UnitPrice.String(),
				fmt.Sprint(item.Quantity),
				item.LineTotal().String(),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// Label builds the parcel-label payload for one order.
func (s *ReportService) Label(orderID string) (ParcelLabel, error) {
	order, err := s.orders.FindByOrderID(orderID)
	if err != nil {
		return ParcelLabel{}, &NotFoundError{Resource: "Order", ID: orderID}
	}

	return ParcelLabel{
		OrderID:       order.OrderID,
		CustomerName:  order.CustomerName,
		ContactNumber: order.ContactNumber,
		AddressLines:  splitAddress(order.Address),
		Items:         order.Items,
		TotalAmount:   order.TotalAmount,
		Qty:           order.Qty,
		ScanURL:       config.BaseURL() + "/api/admin/orders/" + order.OrderID,
	}, nil
}

// dailySeries groups orders by calendar day, oldest first.
func dailySeries(orders []models.Order) []SeriesPoint {
	byDay := collection.GroupBy(orders, func(o models.Order) string {
		return o.CreatedAt.Format("2006-01-02")
	})

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	collection.SortBy(days, func(a, b string) bool { return a < b })

	return collection.Map(days, func(day string) SeriesPoint {
		total := collection.Reduce(byDay[day], money.Money(0), func(acc money.Money, o models.Order) money.Money {
			return acc.Add(o.TotalAmount)
		})
		return SeriesPoint{Label: day, Value: total}
	})
}

// topProducts tallies quantities per product name across all order lines.
func topProducts(orders []models.Order, n int) []TopProduct {
	tally := map[string]int{}
	for _, o := range orders {
		for _, item := range o.Items {
			tally[item.ProductName] += item.Quantity
		}
	}

	top := make([]TopProduct, 0, len(tally))
	for name, qty := range tally {
		top = append(top, TopProduct{ProductName: name, Quantity: qty})
	}
	collection.SortBy(top, func(a, b TopProduct) bool {
		if a.Quantity == b.Quantity {
			return a.ProductName < b.ProductName
		}
		return a.Quantity > b.Quantity
	})

	return collection.Take(top, n)
}

func splitAddress(address string) []string {
	parts := strings.FieldsFunc(address, func(r rune) bool { return r == ',' || r == '\n' })

	var lines []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		lines = []string{address}
	}
	return lines
}
