package repositories

import (
	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/pkg/orm"
)

// CatalogRepository handles categories, subcategories and brands.
type CatalogRepository struct{}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// Categories returns all categories with their subcategories.
func (r *CatalogRepository) Categories() ([]models.Category, error) {
	var cats []models.Category
	err := orm.DB().Model(&models.Category{}).
		Preload("Subcategories").
		Order("name asc").
		Get(&cats)
	return cats, err
}

// FindCategory looks up one category by primary key.
func (r *CatalogRepository) FindCategory(id uint) (models.Category, error) {
	var cat models.Category
	err := orm.DB().Model(&models.Category{}).Where("id = ?", id).First(&cat)
	return cat, err
}

// CreateCategory persists a new category.
func (r *CatalogRepository) CreateCategory(cat *models.Category) error {
	return orm.DB().Create(cat)
}

// UpdateCategory persists changes to a category.
func (r *CatalogRepository) UpdateCategory(cat *models.Category) error {
	return orm.DB().Save(cat)
}

// DeleteCategory removes a category and reports whether a row existed.
func (r *CatalogRepository) DeleteCategory(id uint) (bool, error) {
	n, err := orm.DB().Where("id = ?", id).Delete(&models.Category{})
	return n > 0, err
}

// Subcategories returns all subcategories of one category.
func (r *CatalogRepository) Subcategories(categoryID uint) ([]models.Subcategory, error) {
	var subs []models.Subcategory
	err := orm.DB().Model(&models.Subcategory{}).
		Where("category_id = ?", categoryID).
		Order("name asc").
		Get(&subs)
	return subs, err
}

// FindSubcategory looks up one subcategory by primary key.
func (r *CatalogRepository) FindSubcategory(id uint) (models.Subcategory, error) {
	var sub models.Subcategory
	err := orm.DB().Model(&models.Subcategory{}).Where("id = ?", id).First(&sub)
	return sub, err
}

// CreateSubcategory persists a new subcategory.
func (r *CatalogRepository) CreateSubcategory(sub *models.Subcategory) error {
	return orm.DB().Create(sub)
}

// UpdateSubcategory persists changes to a subcategory.
func (r *CatalogRepository) UpdateSubcategory(sub *models.Subcategory) error {
	return orm.DB().Save(sub)
}

// DeleteSubcategory removes a subcategory and reports whether a row existed.
func (r *CatalogRepository) DeleteSubcategory(id uint) (bool, error) {
	n, err := orm.DB().Where("id = ?", id).Delete(&models.Subcategory{})
	return n > 0, err
}

// Brands returns all brands, optionally filtered by category.
func (r *CatalogRepository) Brands(categoryID uint) ([]models.Brand, error) {
	q := orm.DB().Model(&models.Brand{})
	if categoryID > 0 {
		q = q.Where("category_id = ?", categoryID)
	}

	var brands []models.Brand
	err := q.Order("name asc").Get(&brands)
	return brands, err
}

// FindBrand looks up one brand by primary key.
func (r *CatalogRepository) FindBrand(id uint) (models.Brand, error) {
	var brand models.Brand
	err := orm.DB().Model(&models.Brand{}).Where("id = ?", id).First(&brand)
	return brand, err
}

// CreateBrand persists a new brand.
func (r *CatalogRepository) CreateBrand(brand *models.Brand) error {
	return orm.DB().Create(brand)
}

// UpdateBrand persists changes to a brand.
func (r *CatalogRepository) UpdateBrand(brand *models.Brand) error {
	return orm.DB().Save(brand)
}

// DeleteBrand removes a brand and reports whether a row existed.
func (r *CatalogRepository) DeleteBrand(id uint) (bool, error) {
	n, err := orm.DB().Where("id = ?", id).Delete(&models.Brand{})
	return n > 0, err
}
