package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/pkg/orm"
)

// CartRepository handles cart and wishlist rows.
type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

// CartItems returns a user's cart with product detail.
func (r *CartRepository) CartItems(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := orm.DB().Model(&models.CartItem{}).
		Where("user_id = ?", userID).
		Preload("Product").
		Preload("Product.Images").
		Order("created_at asc").
		Get(&items)
	return items, err
}

// AddToCart inserts a cart row or increments the existing one's quantity.
func (r *CartRepository) AddToCart(userID, productID uint, qty int) (models.CartItem, error) {
	var item models.CartItem
	err := orm.DB().Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item)

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{UserID: userID, ProductID: productID, Quantity: qty}
		if err := orm.DB().Create(&item); err != nil {
			return models.CartItem{}, err
		}
		return item, nil
	case err != nil:
		return item, err
	default:
		item.Quantity += qty
		return item, orm.DB().Save(&item)
	}
}

// SetCartQuantity overwrites the quantity on a cart row; reports whether the
// row existed.
func (r *CartRepository) SetCartQuantity(userID, productID uint, qty int) (bool, error) {
	n, err := orm.DB().Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Updates(map[string]interface{}{"quantity": qty})
	return n > 0, err
}

// RemoveFromCart deletes one cart row; reports whether it existed.
func (r *CartRepository) RemoveFromCart(userID, productID uint) (bool, error) {
	n, err := orm.DB().
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{})
	return n > 0, err
}

// ClearCart deletes all of a user's cart rows.
func (r *CartRepository) ClearCart(userID uint) error {
	_, err := orm.DB().Where("user_id = ?", userID).Delete(&models.CartItem{})
	return err
}

// Wishlist returns a user's wishlist with product detail.
func (r *CartRepository) Wishlist(userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := orm.DB().Model(&models.WishlistItem{}).
		Where("user_id = ?", userID).
		Preload("Product").
		Preload("Product.Images").
		Order("created_at desc").
		Get(&items)
	return items, err
}

// AddToWishlist inserts a wishlist row; adding an already-listed product is
// a no-op.
func (r *CartRepository) AddToWishlist(userID, productID uint) (models.WishlistItem, error) {
	var item models.WishlistItem
	err := orm.DB().Model(&models.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item)

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.WishlistItem{UserID: userID, ProductID: productID}
		if err := orm.DB().Create(&item); err != nil {
			return models.WishlistItem{}, err
		}
		return item, nil
	case err != nil:
		return item, err
	default:
		return item, nil
	}
}

// RemoveFromWishlist deletes one wishlist row; reports whether it existed.
func (r *CartRepository) RemoveFromWishlist(userID, productID uint) (bool, error) {
	n, err := orm.DB().
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{})
	return n > 0, err
}
