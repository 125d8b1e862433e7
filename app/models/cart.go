package models

import "gorm.io/gorm"

// CartItem is one (user, product) pair with a mutable positive quantity.
// Adding the same product again increments the existing row.
type CartItem struct {
	gorm.Model
	UserID    uint `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int  `gorm:"not null;default:1"                         json:"quantity"`

	Product Product `json:"product,omitempty"`
}

// WishlistItem is one (user, product) pair. No quantity.
type WishlistItem struct {
	gorm.Model
	UserID    uint `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"product_id"`

	Product Product `json:"product,omitempty"`
}
