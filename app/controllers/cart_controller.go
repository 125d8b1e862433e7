package controllers

import (
	"github.com/shashiranjanraj/voltkart/app/services"
	"github.com/shashiranjanraj/voltkart/pkg/ctx"
	"github.com/shashiranjanraj/voltkart/pkg/middleware"
)

type CartController struct {
	service *services.CartService
}

func NewCartController() *CartController {
	return &CartController{service: services.NewCartService()}
}

// Show returns the caller's cart with line totals.
func (cc *CartController) Show(c *ctx.Context) {
	userID, _ := middleware.UserIDFromCtx(c.R)

	view, err := cc.service.Cart(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(view)
}

// Add merges a product into the cart.
func (cc *CartController) Add(c *ctx.Context) {
	userID, _ := middleware.UserIDFromCtx(c.R)

	var input services.CartAddInput
	if !c.BindJSON(&input) {
		return
	}

	item, err := cc.service.AddToCart(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Created(item)
}

// UpdateQuantity overwrites a cart line's quantity.
func (cc *CartController) UpdateQuantity(c *ctx.Context) {
	userID, _ := middleware.UserIDFromCtx(c.R)

	var input services.CartQuantityInput
	if !c.BindJSON(&input) {
		return
	}

	if err := cc.service.SetQuantity(userID, c.ParamUint("productId"), input); err != nil {
		respondError(c, err)
		return
	}
	c.Message("Quantity updated")
}

// Remove deletes one cart line.
func (cc *CartController) Remove(c *ctx.Context) {
	userID, _ := middleware.UserIDFromCtx(c.R)

	if err := cc.service.RemoveFromCart(userID, c.ParamUint("productId")); err != nil {
		respondError(c, err)
		return
	}
	c.Message("Removed from cart")
}

// Clear empties the caller's cart.
func (cc *CartController) Clear(c *ctx.Context) {
	userID, _ := middleware.UserIDFromCtx(c.R)

	if err := cc.service.ClearCart(userID); err != nil {
		respondError(c, err)
		return
	}
	c.Message("Cart cleared")
}

// Wishlist returns the caller's wishlist.
func (cc *CartController) Wishlist(c *ctx.Context) {
	userID, _ := middleware.UserIDFromCtx(c.R)

	items, err := cc.service.Wishlist(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(items)
}

// AddToWishlist lists a product on the caller's wishlist.
func (cc *CartController) AddToWishlist(c *ctx.Context) {
	userID, _ := middleware.UserIDFromCtx(c.R)

	var input services.WishlistInput
	if !c.BindJSON(&input) {
		return
	}

	item, err := cc.service.AddToWishlist(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Created(item)
}

// RemoveFromWishlist delists a product.
func (cc *CartController) RemoveFromWishlist(c *ctx.Context) {
	userID, _ := middleware.UserIDFromCtx(c.R)

	if err := cc.service.RemoveFromWishlist(userID, c.ParamUint("productId")); err != nil {
		respondError(c, err)
		return
	}
	c.Message("Removed from wishlist")
}
