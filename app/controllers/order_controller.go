package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/voltkart/app/resources"
	"github.com/shashiranjanraj/voltkart/app/services"
	"github.com/shashiranjanraj/voltkart/pkg/ctx"
	"github.com/shashiranjanraj/voltkart/pkg/middleware"
	"github.com/shashiranjanraj/voltkart/pkg/resource"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController() *OrderController {
	return &OrderController{service: services.NewOrderService()}
}

// Store runs the order workflow for the authenticated customer.
func (oc *OrderController) Store(c *ctx.Context) {
	userID, _ := middleware.UserIDFromCtx(c.R)

	var input services.CreateOrderInput
	if !c.BindJSON(&input) {
		return
	}

	result, err := oc.service.Create(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Created(result)
}

// Index lists every order for the admin panel, newest first, optionally
// filtered with ?month=&year=.
func (oc *OrderController) Index(c *ctx.Context) {
	summaries, err := oc.service.All(c.QueryInt("month", 0), c.QueryInt("year", 0))
	if err != nil {
		respondError(c, err)
		return
	}

	resource.CollectionOf(summaries, func(s services.OrderSummary) resource.Transformer {
		return resources.OrderSummaryTransformer(s)
	}).WithMeta(resource.Map{"count": len(summaries)}).Respond(c.W, http.StatusOK)
}

// Mine lists the calling customer's own orders.
func (oc *OrderController) Mine(c *ctx.Context) {
	userID, _ := middleware.UserIDFromCtx(c.R)

	summaries, err := oc.service.ForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resource.CollectionOf(summaries, func(s services.OrderSummary) resource.Transformer {
		return resources.OrderSummaryTransformer(s)
	}).Respond(c.W, http.StatusOK)
}

// Show returns one full order aggregate. Customers can only read their own;
// admins can read any.
func (oc *OrderController) Show(c *ctx.Context) {
	order, err := oc.service.Get(c.Param("orderId"))
	if err != nil {
		respondError(c, err)
		return
	}

	role, _ := middleware.RoleFromCtx(c.R)
	userID, _ := middleware.UserIDFromCtx(c.R)
	if role != "admin" && order.UserID != userID {
		c.Forbidden()
		return
	}

	resource.New(resources.OrderResource{Order: order}).Respond(c.W, http.StatusOK)
}

// UpdateStatus moves an order through the fulfillment state machine.
func (oc *OrderController) UpdateStatus(c *ctx.Context) {
	var input struct {
		Status string `json:"status" validate:"required"`
	}
	if !c.BindJSON(&input) {
		return
	}

	order, err := oc.service.UpdateStatus(c.Param("orderId"), input.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Success(map[string]interface{}{
		"order_id":     order.OrderID,
		"order_status": order.OrderStatus,
	})
}

// statuses used by the admin UI dropdown
var orderStatuses = []string{"Pending", "Accept", "Packed", "Shipped", "Delivered", "Cancelled"}

// Statuses returns the full status vocabulary for front-end dropdowns.
func (oc *OrderController) Statuses(c *ctx.Context) {
	c.Success(orderStatuses)
}
