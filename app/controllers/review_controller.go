package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/app/resources"
	"github.com/shashiranjanraj/voltkart/app/services"
	"github.com/shashiranjanraj/voltkart/pkg/ctx"
	"github.com/shashiranjanraj/voltkart/pkg/middleware"
	"github.com/shashiranjanraj/voltkart/pkg/resource"
)

type ReviewController struct {
	service *services.ReviewService
}

func NewReviewController() *ReviewController {
	return &ReviewController{service: services.NewReviewService()}
}

// Store submits a review from the authenticated customer.
func (rc *ReviewController) Store(c *ctx.Context) {
	userID, _ := middleware.UserIDFromCtx(c.R)

	var input services.ReviewInput
	if !c.BindJSON(&input) {
		return
	}

	review, err := rc.service.Submit(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Created(review)
}

// Index lists reviews for moderation, optionally filtered with ?status=.
func (rc *ReviewController) Index(c *ctx.Context) {
	reviews, pagination, err := rc.service.All(
		c.Query("status"),
		c.QueryInt("page", 1),
		c.QueryInt("per_page", 15),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	resource.CollectionOf(reviews, func(r models.Review) resource.Transformer {
		return resources.ReviewResource{Review: r}
	}).WithPagination(pagination).Respond(c.W, http.StatusOK)
}

// UpdateStatus approves or rejects one review.
func (rc *ReviewController) UpdateStatus(c *ctx.Context) {
	var input services.ReviewStatusInput
	if !c.BindJSON(&input) {
		return
	}

	if err := rc.service.SetStatus(c.ParamUint("id"), input); err != nil {
		respondError(c, err)
		return
	}
	c.Message("Review " + input.Status)
}

// ForProduct returns a product's approved reviews for the storefront.
func (rc *ReviewController) ForProduct(c *ctx.Context) {
	reviews, err := rc.service.ApprovedForProduct(c.ParamUint("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	resource.CollectionOf(reviews, func(r models.Review) resource.Transformer {
		return resources.ReviewResource{Review: r}
	}).Respond(c.W, http.StatusOK)
}
