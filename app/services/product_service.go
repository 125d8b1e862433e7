package services

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/app/repositories"
	"github.com/shashiranjanraj/voltkart/pkg/collection"
	"github.com/shashiranjanraj/voltkart/pkg/money"
	"github.com/shashiranjanraj/voltkart/pkg/orm"
	"github.com/shashiranjanraj/voltkart/pkg/storage"
)

// SpecificationInput is one key/value row on a product form.
type SpecificationInput struct {
	Key   string `json:"key"   validate:"required,max=255"`
	Value string `json:"value" validate:"nullable,max=500"`
}

// ProductInput is the admin create/update body.
type ProductInput struct {
	CategoryID    uint                 `json:"category_id"       validate:"required"`
	SubcategoryID *uint                `json:"subcategory_id"`
	BrandID       *uint                `json:"brand_id"`
	Name          string               `json:"name"              validate:"required,max=255"`
	SKU           string               `json:"sku"               validate:"required,alpha_dash,max=100"`
	PartNumber    string               `json:"part_number"       validate:"nullable,max=100"`
	Price         money.Money          `json:"price"             validate:"required,gt=0"`
	Stock         int                  `json:"stock"             validate:"gte=0"`
	ShortDesc     string               `json:"short_description" validate:"nullable,max=500"`
	LongDesc      string               `json:"long_description"`
	Datasheet     string               `json:"datasheet_url"     validate:"nullable,url"`
	IsActive      *bool                `json:"is_active"`
	Specs         []SpecificationInput `json:"specifications"`
}

// ProductService manages the catalogue's products, their specifications,
// and their images.
type ProductService struct {
	products *repositories.ProductRepository
	catalog  *repositories.CatalogRepository
}

func NewProductService() *ProductService {
	return &ProductService{
		products: repositories.NewProductRepository(),
		catalog:  repositories.NewCatalogRepository(),
	}
}

// All returns one page of products for the admin listing.
func (s *ProductService) All(page, perPage int, categoryID uint, search string) ([]models.Product, orm.Pagination, error) {
	return s.products.All(page, perPage, categoryID, search)
}

// Active returns the storefront product list (cached).
func (s *ProductService) Active() ([]models.Product, error) {
	return s.products.Active()
}

// Get loads one product's full detail.
func (s *ProductService) Get(id uint) (models.Product, error) {
	product, err := s.products.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, &NotFoundError{Resource: "Product", ID: fmt.Sprint(id)}
	}
	return product, err
}

// GetBySlug loads one product by storefront slug.
func (s *ProductService) GetBySlug(slug string) (models.Product, error) {
	product, err := s.products.FindBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, &NotFoundError{Resource: "Product", ID: slug}
	}
	return product, err
}

// Create adds a product. IsInStock is derived from the initial stock and the
// slug from the name.
func (s *ProductService) Create(input ProductInput) (models.Product, error) {
	if _, err := s.catalog.FindCategory(input.CategoryID); errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, &NotFoundError{Resource: "Category", ID: fmt.Sprint(input.CategoryID)}
	}

	product := models.Product{
		CategoryID:    input.CategoryID,
		SubcategoryID: input.SubcategoryID,
		BrandID:       input.BrandID,
		Name:          input.Name,
		Slug:          Slugify(input.Name),
		SKU:           input.SKU,
		PartNumber:    input.PartNumber,
		Price:         input.Price,
		Stock:         input.Stock,
		IsInStock:     input.Stock > 0,
		ShortDesc:     input.ShortDesc,
		LongDesc:      input.LongDesc,
		Datasheet:     input.Datasheet,
		IsActive:      input.IsActive == nil || *input.IsActive,
		Specifications: collection.Map(input.Specs, func(sp SpecificationInput) models.ProductSpecification {
			return models.ProductSpecification{Key: sp.Key, Value: sp.Value}
		}),
	}
	if err := s.products.Create(&product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Update overwrites a product's editable fields. Stock edits here are the
// admin restock path; the order workflow never goes through Update.
func (s *ProductService) Update(id uint, input ProductInput) (models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return models.Product{}, err
	}

	product.CategoryID = input.CategoryID
	product.SubcategoryID = input.SubcategoryID
	product.BrandID = input.BrandID
	product.Name = input.Name
	product.Slug = Slugify(input.Name)
	product.SKU = input.SKU
	product.PartNumber = input.PartNumber
	product.Price = input.Price
	product.Stock = input.Stock
	product.IsInStock = input.Stock > 0
	product.ShortDesc = input.ShortDesc
	product.LongDesc = input.LongDesc
	product.Datasheet = input.Datasheet
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	return product, s.products.Update(&product)
}

// Delete removes a product.
func (s *ProductService) Delete(id uint) error {
	ok, err := s.products.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Resource: "Product", ID: fmt.Sprint(id)}
	}
	return nil
}

// LowStock returns active products at or below the threshold.
func (s *ProductService) LowStock(threshold int) ([]models.Product, error) {
	return s.products.LowStock(threshold)
}

// UploadImage stores an image on the configured disk under
// products/{id}/{timestamp}{ext} and records it. The first image uploaded
// for a product becomes its primary image.
func (s *ProductService) UploadImage(productID uint, filename string, content io.Reader) (models.ProductImage, error) {
	product, err := s.Get(productID)
	if err != nil {
		return models.ProductImage{}, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return models.ProductImage{}, NewValidationError("image", "Only jpg, jpeg, png and webp images are accepted.")
	}

	path := fmt.Sprintf("products/%d/%d%s", product.ID, time.Now().UnixNano(), ext)
	if err := storage.PutStream(path, content); err != nil {
		return models.ProductImage{}, &ExternalError{Service: "storage", Err: err}
	}

	img := models.ProductImage{ProductID: product.ID, Path: path, Alt: product.Name}
	if err := s.products.AddImage(&img); err != nil {
		return models.ProductImage{}, err
	}
	return img, nil
}

// ImageURL resolves a stored image path to its public URL.
func (s *ProductService) ImageURL(path string) string {
	return storage.URL(path)
}

// Slugify lowercases a name and replaces runs of non-alphanumerics with a
// single hyphen ("MCB 10kA C-Curve" → "mcb-10ka-c-curve").
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, c := range strings.ToLower(name) {
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			b.WriteRune(c)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
