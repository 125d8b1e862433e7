package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/app/repositories"
	"github.com/shashiranjanraj/voltkart/pkg/cache"
)

// CategoryInput names a category.
type CategoryInput struct {
	Name string `json:"name" validate:"required,max=255"`
}

// SubcategoryInput nests a name under a category.
type SubcategoryInput struct {
	CategoryID uint   `json:"category_id" validate:"required"`
	Name       string `json:"name"        validate:"required,max=255"`
}

// BrandInput names a brand within a category.
type BrandInput struct {
	CategoryID uint   `json:"category_id" validate:"required"`
	Name       string `json:"name"        validate:"required,max=255"`
}

// CatalogService manages categories, subcategories and brands.
type CatalogService struct {
	catalog *repositories.CatalogRepository
}

func NewCatalogService() *CatalogService {
	return &CatalogService{catalog: repositories.NewCatalogRepository()}
}

// Categories returns the full category tree.
func (s *CatalogService) Categories() ([]models.Category, error) {
	return s.catalog.Categories()
}

// CreateCategory adds a category.
func (s *CatalogService) CreateCategory(input CategoryInput) (models.Category, error) {
	cat := models.Category{Name: input.Name}
	return cat, s.catalog.CreateCategory(&cat)
}

// UpdateCategory renames a category.
func (s *CatalogService) UpdateCategory(id uint, input CategoryInput) (models.Category, error) {
	cat, err := s.catalog.FindCategory(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Category{}, &NotFoundError{Resource: "Category", ID: fmt.Sprint(id)}
	}
	if err != nil {
		return models.Category{}, err
	}

	cat.Name = input.Name
	return cat, s.catalog.UpdateCategory(&cat)
}

// DeleteCategory removes a category.
func (s *CatalogService) DeleteCategory(id uint) error {
	ok, err := s.catalog.DeleteCategory(id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Resource: "Category", ID: fmt.Sprint(id)}
	}
	s.invalidateProductCache()
	return nil
}

// Subcategories lists a category's subcategories.
func (s *CatalogService) Subcategories(categoryID uint) ([]models.Subcategory, error) {
	if _, err := s.catalog.FindCategory(categoryID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "Category", ID: fmt.Sprint(categoryID)}
	}
	return s.catalog.Subcategories(categoryID)
}

// CreateSubcategory adds a subcategory under an existing category.
func (s *CatalogService) CreateSubcategory(input SubcategoryInput) (models.Subcategory, error) {
	if _, err := s.catalog.FindCategory(input.CategoryID); errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Subcategory{}, &NotFoundError{Resource: "Category", ID: fmt.Sprint(input.CategoryID)}
	}

	sub := models.Subcategory{CategoryID: input.CategoryID, Name: input.Name}
	return sub, s.catalog.CreateSubcategory(&sub)
}

// UpdateSubcategory renames a subcategory.
func (s *CatalogService) UpdateSubcategory(id uint, input SubcategoryInput) (models.Subcategory, error) {
	sub, err := s.catalog.FindSubcategory(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Subcategory{}, &NotFoundError{Resource: "Subcategory", ID: fmt.Sprint(id)}
	}
	if err != nil {
		return models.Subcategory{}, err
	}

	sub.Name = input.Name
	if input.CategoryID != 0 {
		sub.CategoryID = input.CategoryID
	}
	return sub, s.catalog.UpdateSubcategory(&sub)
}

// DeleteSubcategory removes a subcategory.
func (s *CatalogService) DeleteSubcategory(id uint) error {
	ok, err := s.catalog.DeleteSubcategory(id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Resource: "Subcategory", ID: fmt.Sprint(id)}
	}
	return nil
}

// Brands lists brands, optionally narrowed to one category.
func (s *CatalogService) Brands(categoryID uint) ([]models.Brand, error) {
	return s.catalog.Brands(categoryID)
}

// CreateBrand adds a brand under an existing category.
func (s *CatalogService) CreateBrand(input BrandInput) (models.Brand, error) {
	if _, err := s.catalog.FindCategory(input.CategoryID); errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Brand{}, &NotFoundError{Resource: "Category", ID: fmt.Sprint(input.CategoryID)}
	}

	brand := models.Brand{CategoryID: input.CategoryID, Name: input.Name}
	return brand, s.catalog.CreateBrand(&brand)
}

// UpdateBrand renames a brand.
func (s *CatalogService) UpdateBrand(id uint, input BrandInput) (models.Brand, error) {
	brand, err := s.catalog.FindBrand(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Brand{}, &NotFoundError{Resource: "Brand", ID: fmt.Sprint(id)}
	}
	if err != nil {
		return models.Brand{}, err
	}

	brand.Name = input.Name
	if input.CategoryID != 0 {
		brand.CategoryID = input.CategoryID
	}
	return brand, s.catalog.UpdateBrand(&brand)
}

// DeleteBrand removes a brand.
func (s *CatalogService) DeleteBrand(id uint) error {
	ok, err := s.catalog.DeleteBrand(id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Resource: "Brand", ID: fmt.Sprint(id)}
	}
	return nil
}

func (s *CatalogService) invalidateProductCache() {
	cache.Forget(repositories.ActiveProductsCacheKey) //nolint:errcheck
}
