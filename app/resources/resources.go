// Package resources defines the transformers that shape models for the API.
package resources

import (
	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/app/services"
	"github.com/shashiranjanraj/voltkart/pkg/resource"
	"github.com/shashiranjanraj/voltkart/pkg/storage"
)

// UserResource exposes an account without its hash or timestamps.
type UserResource struct {
	User models.User
}

func (r UserResource) ToArray(_ interface{}) resource.Map {
	return resource.Map{
		"id":        r.User.ID,
		"username":  r.User.Username,
		"email":     r.User.Email,
		"full_name": r.User.FullName,
		"avatar":    r.User.Avatar,
		"role":      r.User.Role,
		"is_active": r.User.IsActive,
		"joined_at": r.User.CreatedAt,
	}
}

// ProductResource is the storefront product card shape. Image paths are
// resolved to public URLs through the storage manager.
type ProductResource struct {
	Product models.Product
}

func (r ProductResource) ToArray(_ interface{}) resource.Map {
	images := make([]resource.Map, 0, len(r.Product.Images))
	for _, img := range r.Product.Images {
		images = append(images, resource.Map{
			"url":        storage.URL(img.Path),
			"alt":        img.Alt,
			"is_primary": img.IsPrimary,
		})
	}

	specs := make([]resource.Map, 0, len(r.Product.Specifications))
	for _, sp := range r.Product.Specifications {
		specs = append(specs, resource.Map{"key": sp.Key, "value": sp.Value})
	}

	return resource.Map{
		"id":                r.Product.ID,
		"category_id":       r.Product.CategoryID,
		"subcategory_id":    r.Product.SubcategoryID,
		"brand_id":          r.Product.BrandID,
		"name":              r.Product.Name,
		"slug":              r.Product.Slug,
		"sku":               r.Product.SKU,
		"part_number":       r.Product.PartNumber,
		"price":             r.Product.Price,
		"stock":             r.Product.Stock,
		"is_in_stock":       r.Product.IsInStock,
		"short_description": r.Product.ShortDesc,
		"long_description":  r.Product.LongDesc,
		"datasheet_url":     r.Product.Datasheet,
		"is_active":         r.Product.IsActive,
		"images":            images,
		"specifications":    specs,
	}
}

// OrderResource is the order aggregate with its lines.
type OrderResource struct {
	Order models.Order
	Image string
}

func (r OrderResource) ToArray(_ interface{}) resource.Map {
	items := make([]resource.Map, 0, len(r.Order.Items))
	for _, item := range r.Order.Items {
		items = append(items, resource.Map{
			"product_id":   item.ProductID,
			"product_name": item.ProductName,
			"unit_price":   item.UnitPrice,
			"quantity":     item.Quantity,
			"line_total":   item.LineTotal(),
		})
	}

	out := resource.Map{
		"order_id":       r.Order.OrderID,
		"customer_name":  r.Order.CustomerName,
		"customer_email": r.Order.CustomerEmail,
		"contact_number": r.Order.ContactNumber,
		"total_amount":   r.Order.TotalAmount,
		"qty":            r.Order.Qty,
		"payment_status": r.Order.PaymentStatus,
		"order_status":   r.Order.OrderStatus,
		"address":        r.Order.Address,
		"created_at":     r.Order.CreatedAt,
		"items":          items,
	}
	if r.Image != "" {
		out["image"] = storage.URL(r.Image)
	}
	return out
}

// OrderSummaryTransformer adapts a listing row.
func OrderSummaryTransformer(s services.OrderSummary) resource.Transformer {
	return OrderResource{Order: s.Order, Image: s.Image}
}

// ReviewResource is a published review with its author name.
type ReviewResource struct {
	Review models.Review
}

func (r ReviewResource) ToArray(_ interface{}) resource.Map {
	return resource.Map{
		"id":         r.Review.ID,
		"product_id": r.Review.ProductID,
		"rating":     r.Review.Rating,
		"comment":    r.Review.Comment,
		"status":     r.Review.Status,
		"author":     r.Review.User.FullName,
		"created_at": r.Review.CreatedAt,
	}
}
