package models

import "gorm.io/gorm"

// Roles assignable to a user account.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User is an account in the identity store. Admins manage the catalog and
// orders; customers shop through the storefront.
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Email    string `gorm:"size:255"                      json:"email"`
	FullName string `gorm:"size:255"                      json:"full_name"`
	Avatar   string `gorm:"size:500"                      json:"avatar"`
	Role     string `gorm:"size:50;default:customer"      json:"role"`
	IsActive bool   `gorm:"default:true"                  json:"is_active"`
	Password string `gorm:"size:255;not null"             json:"-"` // bcrypt hash, never serialised
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
