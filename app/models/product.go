package models

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/voltkart/pkg/money"
)

// Product is a catalogue entry. Stock never goes below zero: the only writer
// that decrements it is the order workflow's conditional update, and
// IsInStock is recomputed in the same statement so the two stay consistent.
type Product struct {
	gorm.Model
	CategoryID    uint  `gorm:"not null;index" json:"category_id"`
	SubcategoryID *uint `gorm:"index"          json:"subcategory_id"`
	BrandID       *uint `gorm:"index"          json:"brand_id"`

	Name       string      `gorm:"size:255;not null;index" json:"name"`
	Slug       string      `gorm:"uniqueIndex;size:255"    json:"slug"`
	SKU        string      `gorm:"uniqueIndex;size:100"    json:"sku"`
	PartNumber string      `gorm:"size:100"                json:"part_number"`
	Price      money.Money `gorm:"not null;default:0"      json:"price"`
	Stock      int         `gorm:"not null;default:0"      json:"stock"`
	IsInStock  bool        `gorm:"default:false"           json:"is_in_stock"`
	ShortDesc  string      `gorm:"size:500"                json:"short_description"`
	LongDesc   string      `gorm:"type:text"               json:"long_description"`
	Datasheet  string      `gorm:"size:500"                json:"datasheet_url"`
	IsActive   bool        `gorm:"default:true;index"      json:"is_active"`

	Category       Category               `json:"category,omitempty"`
	Specifications []ProductSpecification `json:"specifications,omitempty"`
	Images         []ProductImage         `json:"images,omitempty"`
}

// ProductSpecification is one key/value row on a product's spec sheet
// (e.g. "Breaking Capacity" → "10kA").
type ProductSpecification struct {
	gorm.Model
	ProductID uint   `gorm:"not null;index"    json:"product_id"`
	Key       string `gorm:"size:255;not null" json:"key"`
	Value     string `gorm:"size:500"          json:"value"`
}

// ProductImage is an uploaded product photo. The first upload for a product
// becomes the primary image.
type ProductImage struct {
	gorm.Model
	ProductID uint   `gorm:"not null;index"    json:"product_id"`
	Path      string `gorm:"size:500;not null" json:"path"`
	Alt       string `gorm:"size:255"          json:"alt"`
	IsPrimary bool   `gorm:"default:false"     json:"is_primary"`
}
