package models

import "gorm.io/gorm"

// Review moderation statuses.
const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

// Review is a customer rating (1 to 5) on a product. New reviews start
// pending and only become visible on the storefront once approved.
type Review struct {
	gorm.Model
	ProductID uint   `gorm:"not null;index"          json:"product_id"`
	UserID    uint   `gorm:"not null;index"          json:"user_id"`
	Rating    int    `gorm:"not null"                json:"rating"`
	Comment   string `gorm:"type:text;not null"      json:"comment"`
	Status    string `gorm:"size:20;default:pending" json:"status"`

	Product Product `json:"product,omitempty"`
	User    User    `json:"user,omitempty"`
}
