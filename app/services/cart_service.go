package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/app/repositories"
	"github.com/shashiranjanraj/voltkart/pkg/collection"
	"github.com/shashiranjanraj/voltkart/pkg/money"
)

// CartAddInput adds a product to the cart.
type CartAddInput struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity"   validate:"required,gte=1"`
}

// CartQuantityInput overwrites a cart line's quantity.
type CartQuantityInput struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

// WishlistInput adds a product to the wishlist.
type WishlistInput struct {
	ProductID uint `json:"product_id" validate:"required"`
}

// CartLine is one cart row with its computed line total.
type CartLine struct {
	models.CartItem
	LineTotal money.Money `json:"line_total"`
}

// CartView is the whole cart with its grand total.
type CartView struct {
	Items []CartLine  `json:"items"`
	Total money.Money `json:"total"`
}

// CartService handles cart and wishlist operations for the storefront.
type CartService struct {
	cart     *repositories.CartRepository
	products *repositories.ProductRepository
}

func NewCartService() *CartService {
	return &CartService{
		cart:     repositories.NewCartRepository(),
		products: repositories.NewProductRepository(),
	}
}

// Cart returns the user's cart with line totals.
func (s *CartService) Cart(userID uint) (CartView, error) {
	items, err := s.cart.CartItems(userID)
	if err != nil {
		return CartView{}, err
	}

	lines := collection.Map(items, func(item models.CartItem) CartLine {
		return CartLine{CartItem: item, LineTotal: item.Product.Price.Mul(item.Quantity)}
	})

	total := collection.Reduce(lines, money.Money(0), func(acc money.Money, l CartLine) money.Money {
		return acc.Add(l.LineTotal)
	})

	return CartView{Items: lines, Total: total}, nil
}

// AddToCart merges the product into the cart, incrementing quantity when the
// line already exists.
func (s *CartService) AddToCart(userID uint, input CartAddInput) (models.CartItem, error) {
	if _, err := s.products.FindActive(input.ProductID); errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CartItem{}, &NotFoundError{Resource: "Product", ID: fmt.Sprint(input.ProductID)}
	} else if err != nil {
		return models.CartItem{}, err
	}

	return s.cart.AddToCart(userID, input.ProductID, input.Quantity)
}

// SetQuantity overwrites one cart line's quantity.
func (s *CartService) SetQuantity(userID, productID uint, input CartQuantityInput) error {
	ok, err := s.cart.SetCartQuantity(userID, productID, input.Quantity)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Resource: "Cart item", ID: fmt.Sprint(productID)}
	}
	return nil
}

// RemoveFromCart deletes one cart line.
func (s *CartService) RemoveFromCart(userID, productID uint) error {
	ok, err := s.cart.RemoveFromCart(userID, productID)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Resource: "Cart item", ID: fmt.Sprint(productID)}
	}
	return nil
}

// ClearCart empties the user's cart (called after checkout).
func (s *CartService) ClearCart(userID uint) error {
	return s.cart.ClearCart(userID)
}

// Wishlist returns the user's wishlist.
func (s *CartService) Wishlist(userID uint) ([]models.WishlistItem, error) {
	return s.cart.Wishlist(userID)
}

// AddToWishlist lists a product; re-adding is a no-op.
func (s *CartService) AddToWishlist(userID uint, input WishlistInput) (models.WishlistItem, error) {
	if _, err := s.products.FindActive(input.ProductID); errors.Is(err, gorm.ErrRecordNotFound) {
		return models.WishlistItem{}, &NotFoundError{Resource: "Product", ID: fmt.Sprint(input.ProductID)}
	} else if err != nil {
		return models.WishlistItem{}, err
	}

	return s.cart.AddToWishlist(userID, input.ProductID)
}

// RemoveFromWishlist delists a product.
func (s *CartService) RemoveFromWishlist(userID, productID uint) error {
	ok, err := s.cart.RemoveFromWishlist(userID, productID)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Resource: "Wishlist item", ID: fmt.Sprint(productID)}
	}
	return nil
}
