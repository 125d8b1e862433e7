package models

import "gorm.io/gorm"

// Category is a top-level product grouping (e.g. "Circuit Protection").
type Category struct {
	gorm.Model
	Name          string        `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}

// Subcategory nests under a category; its name is unique per category.
type Subcategory struct {
	gorm.Model
	CategoryID uint   `gorm:"not null;index;uniqueIndex:idx_subcat_name" json:"category_id"`
	Name       string `gorm:"size:255;not null;uniqueIndex:idx_subcat_name" json:"name"`
}

// Brand is a manufacturer within a category.
type Brand struct {
	gorm.Model
	CategoryID uint   `gorm:"not null;index"                json:"category_id"`
	Name       string `gorm:"uniqueIndex;size:255;not null" json:"name"`
}
