package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/pkg/cache"
	"github.com/shashiranjanraj/voltkart/pkg/orm"
)

// ActiveProductsCacheKey holds the storefront product list in Redis.
// Invalidated on every product write.
const ActiveProductsCacheKey = "voltkart:products:active"

// ProductRepository handles database operations for Product and its
// specifications and images.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// All returns one page of products for the admin listing.
func (r *ProductRepository) All(page, perPage int, categoryID uint, search string) ([]models.Product, orm.Pagination, error) {
	q := orm.DB().Model(&models.Product{})
	if categoryID > 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if search != "" {
		q = q.Where("name LIKE ? OR sku LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var products []models.Product
	p, err := q.Preload("Images").Order("created_at desc").Paginate(page, perPage, &products)
	return products, p, err
}

// Active returns all active products with images, served from cache when warm.
func (r *ProductRepository) Active() ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).
		Where("is_active = ?", true).
		Preload("Images").
		Order("name asc").
		Cache(ActiveProductsCacheKey, 5*time.Minute, &products)
	return products, err
}

// FindByID loads one product with its full detail.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := orm.DB().Model(&models.Product{}).
		Where("id = ?", id).
		Preload("Category").
		Preload("Specifications").
		Preload("Images").
		First(&product)
	return product, err
}

// FindBySlug loads one product by its storefront slug.
func (r *ProductRepository) FindBySlug(slug string) (models.Product, error) {
	var product models.Product
	err := orm.DB().Model(&models.Product{}).
		Where("slug = ?", slug).
		Preload("Category").
		Preload("Specifications").
		Preload("Images").
		First(&product)
	return product, err
}

// FindActive loads a product only if it exists and is active.
func (r *ProductRepository) FindActive(id uint) (models.Product, error) {
	var product models.Product
	err := orm.DB().Model(&models.Product{}).
		Where("id = ? AND is_active = ?", id, true).
		First(&product)
	return product, err
}

// Create persists a new product with its specifications.
func (r *ProductRepository) Create(product *models.Product) error {
	err := orm.DB().Create(product)
	if err == nil {
		cache.Forget(ActiveProductsCacheKey) //nolint:errcheck
	}
	return err
}

// Update persists changes to a product.
func (r *ProductRepository) Update(product *models.Product) error {
	err := orm.DB().Save(product)
	if err == nil {
		cache.Forget(ActiveProductsCacheKey) //nolint:errcheck
	}
	return err
}

// Delete removes a product and reports whether a row existed.
func (r *ProductRepository) Delete(id uint) (bool, error) {
	n, err := orm.DB().Where("id = ?", id).Delete(&models.Product{})
	if err == nil && n > 0 {
		cache.Forget(ActiveProductsCacheKey) //nolint:errcheck
	}
	return n > 0, err
}

// DecrementStock atomically subtracts qty from a product's stock inside the
// caller's transaction. The WHERE guard makes the check and the write one
// statement: if a concurrent order already took the units, zero rows change
// and the caller must roll back. IsInStock is recomputed in the same
// statement so it never drifts from the counter.
func (r *ProductRepository) DecrementStock(tx *gorm.DB, productID uint, qty int) (bool, error) {
	n, err := orm.Use(tx).Exec(
		`UPDATE products
		 SET stock = stock - ?,
		     is_in_stock = CASE WHEN stock - ? > 0 THEN 1 ELSE 0 END,
		     updated_at = ?
		 WHERE id = ? AND stock >= ? AND deleted_at IS NULL`,
		qty, qty, time.Now(), productID, qty,
	)
	if err != nil {
		return false, err
	}
	if n > 0 {
		cache.Forget(ActiveProductsCacheKey) //nolint:errcheck
	}
	return n > 0, nil
}

// LowStock returns active products at or below the threshold.
func (r *ProductRepository) LowStock(threshold int) ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).
		Where("stock <= ? AND is_active = ?", threshold, true).
		Order("stock asc").
		Get(&products)
	return products, err
}

// AddImage stores an image row; the first image of a product is primary.
func (r *ProductRepository) AddImage(img *models.ProductImage) error {
	n, err := orm.DB().Model(&models.ProductImage{}).
		Where("product_id = ?", img.ProductID).
		Count()
	if err != nil {
		return err
	}
	img.IsPrimary = n == 0

	if err := orm.DB().Create(img); err != nil {
		return err
	}
	cache.Forget(ActiveProductsCacheKey) //nolint:errcheck
	return nil
}

// PrimaryImages returns the primary image path per product for the given ids.
func (r *ProductRepository) PrimaryImages(productIDs []uint) (map[uint]string, error) {
	if len(productIDs) == 0 {
		return map[uint]string{}, nil
	}

	var images []models.ProductImage
	err := orm.DB().Model(&models.ProductImage{}).
		Where("product_id IN ? AND is_primary = ?", productIDs, true).
		Get(&images)
	if err != nil {
		return nil, err
	}

	out := make(map[uint]string, len(images))
	for _, img := range images {
		out[img.ProductID] = img.Path
	}
	return out, nil
}
