package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/app/resources"
	"github.com/shashiranjanraj/voltkart/app/services"
	"github.com/shashiranjanraj/voltkart/pkg/ctx"
	"github.com/shashiranjanraj/voltkart/pkg/resource"
)

type UserController struct {
	service *services.UserService
}

func NewUserController() *UserController {
	return &UserController{service: services.NewUserService()}
}

// Index lists non-admin accounts, paginated.
func (uc *UserController) Index(c *ctx.Context) {
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 15)

	users, pagination, err := uc.service.Customers(page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}

	resource.CollectionOf(users, func(u models.User) resource.Transformer {
		return resources.UserResource{User: u}
	}).WithPagination(pagination).Respond(c.W, http.StatusOK)
}

// Show returns one account.
func (uc *UserController) Show(c *ctx.Context) {
	user, err := uc.service.Get(c.ParamUint("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resource.New(resources.UserResource{User: user}).Respond(c.W, http.StatusOK)
}

// Store creates an account.
func (uc *UserController) Store(c *ctx.Context) {
	var input services.CreateUserInput
	if !c.BindJSON(&input) {
		return
	}

	user, err := uc.service.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Created(resources.UserResource{User: user}.ToArray(nil))
}

// Update applies a partial update to an account.
func (uc *UserController) Update(c *ctx.Context) {
	var input services.UpdateUserInput
	if !c.BindJSON(&input) {
		return
	}

	user, err := uc.service.Update(c.ParamUint("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Success(resources.UserResource{User: user}.ToArray(nil))
}

// Destroy removes an account.
func (uc *UserController) Destroy(c *ctx.Context) {
	if err := uc.service.Delete(c.ParamUint("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Message("User deleted")
}
