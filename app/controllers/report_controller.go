package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shashiranjanraj/voltkart/app/services"
	"github.com/shashiranjanraj/voltkart/pkg/ctx"
)

type ReportController struct {
	service *services.ReportService
}

func NewReportController() *ReportController {
	return &ReportController{service: services.NewReportService()}
}

// Overview is the landing dashboard.
func (rc *ReportController) Overview(c *ctx.Context) {
	view, err := rc.service.Overview()
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(view)
}

// Orders is the orders dashboard, optionally scoped with ?month=&year=.
func (rc *ReportController) Orders(c *ctx.Context) {
	dash, err := rc.service.Orders(c.QueryInt("month", 0), c.QueryInt("year", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(dash)
}

// Accounting is the accounting dashboard.
func (rc *ReportController) Accounting(c *ctx.Context) {
	dash, err := rc.service.Accounting(c.QueryInt("month", 0), c.QueryInt("year", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(dash)
}

// AccountingCSV streams the accounting export as a file download.
func (rc *ReportController) AccountingCSV(c *ctx.Context) {
	rc.csvHeaders(c, "accounting")
	if err := rc.service.AccountingCSV(c.W, c.QueryInt("month", 0), c.QueryInt("year", 0)); err != nil {
		// Headers are out; all we can do is log via the error mapper path.
		respondError(c, err)
	}
}

// OrdersCSV streams the per-line order export as a file download.
func (rc *ReportController) OrdersCSV(c *ctx.Context) {
	rc.csvHeaders(c, "orders")
	if err := rc.service.OrdersCSV(c.W, c.QueryInt("month", 0), c.QueryInt("year", 0)); err != nil {
		respondError(c, err)
	}
}

// Label returns the parcel-label payload consumed by the external
// PDF/barcode renderer.
func (rc *ReportController) Label(c *ctx.Context) {
	label, err := rc.service.Label(c.Param("orderId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(label)
}

func (rc *ReportController) csvHeaders(c *ctx.Context, name string) {
	filename := fmt.Sprintf("%s-%s.csv", name, time.Now().Format("2006-01-02"))
	c.SetHeader("Content-Type", "text/csv; charset=utf-8")
	c.SetHeader("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)
}
