package controllers

import (
	"github.com/shashiranjanraj/voltkart/app/services"
	"github.com/shashiranjanraj/voltkart/pkg/ctx"
)

type CatalogController struct {
	service *services.CatalogService
}

func NewCatalogController() *CatalogController {
	return &CatalogController{service: services.NewCatalogService()}
}

// Categories returns the full category tree.
func (cc *CatalogController) Categories(c *ctx.Context) {
	cats, err := cc.service.Categories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(cats)
}

func (cc *CatalogController) StoreCategory(c *ctx.Context) {
	var input services.CategoryInput
	if !c.BindJSON(&input) {
		return
	}

	cat, err := cc.service.CreateCategory(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Created(cat)
}

func (cc *CatalogController) UpdateCategory(c *ctx.Context) {
	var input services.CategoryInput
	if !c.BindJSON(&input) {
		return
	}

	cat, err := cc.service.UpdateCategory(c.ParamUint("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(cat)
}

func (cc *CatalogController) DestroyCategory(c *ctx.Context) {
	if err := cc.service.DeleteCategory(c.ParamUint("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Message("Category deleted")
}

// Subcategories lists one category's subcategories.
func (cc *CatalogController) Subcategories(c *ctx.Context) {
	subs, err := cc.service.Subcategories(c.ParamUint("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(subs)
}

func (cc *CatalogController) StoreSubcategory(c *ctx.Context) {
	var input services.SubcategoryInput
	if !c.BindJSON(&input) {
		return
	}

	sub, err := cc.service.CreateSubcategory(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Created(sub)
}

func (cc *CatalogController) UpdateSubcategory(c *ctx.Context) {
	var input services.SubcategoryInput
	if !c.BindJSON(&input) {
		return
	}

	sub, err := cc.service.UpdateSubcategory(c.ParamUint("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(sub)
}

func (cc *CatalogController) DestroySubcategory(c *ctx.Context) {
	if err := cc.service.DeleteSubcategory(c.ParamUint("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Message("Subcategory deleted")
}

// Brands lists brands, optionally filtered with ?category_id=.
func (cc *CatalogController) Brands(c *ctx.Context) {
	brands, err := cc.service.Brands(uint(c.QueryInt("category_id", 0)))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(brands)
}

func (cc *CatalogController) StoreBrand(c *ctx.Context) {
	var input services.BrandInput
	if !c.BindJSON(&input) {
		return
	}

	brand, err := cc.service.CreateBrand(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Created(brand)
}

func (cc *CatalogController) UpdateBrand(c *ctx.Context) {
	var input services.BrandInput
	if !c.BindJSON(&input) {
		return
	}

	brand, err := cc.service.UpdateBrand(c.ParamUint("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(brand)
}

func (cc *CatalogController) DestroyBrand(c *ctx.Context) {
	if err := cc.service.DeleteBrand(c.ParamUint("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Message("Brand deleted")
}
