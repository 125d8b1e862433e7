package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/app/resources"
	"github.com/shashiranjanraj/voltkart/app/services"
	"github.com/shashiranjanraj/voltkart/pkg/ctx"
	"github.com/shashiranjanraj/voltkart/pkg/resource"
)

// maxImageUpload caps product image uploads at 8 MB.
const maxImageUpload = 8 << 20

type ProductController struct {
	service *services.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{service: services.NewProductService()}
}

// Index is the admin product listing with pagination, category filter and
// name/SKU search.
func (pc *ProductController) Index(c *ctx.Context) {
	products, pagination, err := pc.service.All(
		c.QueryInt("page", 1),
		c.QueryInt("per_page", 15),
		uint(c.QueryInt("category_id", 0)),
		c.Query("search"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	resource.CollectionOf(products, func(p models.Product) resource.Transformer {
		return resources.ProductResource{Product: p}
	}).WithPagination(pagination).Respond(c.W, http.StatusOK)
}

// Storefront returns the cached active product list for the client app.
func (pc *ProductController) Storefront(c *ctx.Context) {
	products, err := pc.service.Active()
	if err != nil {
		respondError(c, err)
		return
	}

	resource.CollectionOf(products, func(p models.Product) resource.Transformer {
		return resources.ProductResource{Product: p}
	}).Respond(c.W, http.StatusOK)
}

// Show returns one product's full detail by id.
func (pc *ProductController) Show(c *ctx.Context) {
	product, err := pc.service.Get(c.ParamUint("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resource.New(resources.ProductResource{Product: product}).Respond(c.W, http.StatusOK)
}

// ShowBySlug returns one product by its storefront slug.
func (pc *ProductController) ShowBySlug(c *ctx.Context) {
	product, err := pc.service.GetBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	resource.New(resources.ProductResource{Product: product}).Respond(c.W, http.StatusOK)
}

// Store creates a product.
func (pc *ProductController) Store(c *ctx.Context) {
	var input services.ProductInput
	if !c.BindJSON(&input) {
		return
	}

	product, err := pc.service.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Created(resources.ProductResource{Product: product}.ToArray(nil))
}

// Update overwrites a product's editable fields.
func (pc *ProductController) Update(c *ctx.Context) {
	var input services.ProductInput
	if !c.BindJSON(&input) {
		return
	}

	product, err := pc.service.Update(c.ParamUint("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(resources.ProductResource{Product: product}.ToArray(nil))
}

// Destroy removes a product.
func (pc *ProductController) Destroy(c *ctx.Context) {
	if err := pc.service.Delete(c.ParamUint("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Message("Product deleted")
}

// UploadImage accepts a multipart "image" file and stores it on the
// configured disk.
func (pc *ProductController) UploadImage(c *ctx.Context) {
	if err := c.R.ParseMultipartForm(maxImageUpload); err != nil {
		c.Error(http.StatusBadRequest, "Invalid multipart body")
		return
	}

	file, header, err := c.R.FormFile("image")
	if err != nil {
		c.Error(http.StatusBadRequest, "The image file is required")
		return
	}
	defer file.Close()

	img, err := pc.service.UploadImage(c.ParamUint("id"), header.Filename, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Created(map[string]interface{}{
		"id":         img.ID,
		"url":        pc.service.ImageURL(img.Path),
		"is_primary": img.IsPrimary,
	})
}

// LowStock lists active products at or below ?threshold= (default 10).
func (pc *ProductController) LowStock(c *ctx.Context) {
	products, err := pc.service.LowStock(c.QueryInt("threshold", 10))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(products)
}
