package controllers

import (
	"github.com/shashiranjanraj/voltkart/app/resources"
	"github.com/shashiranjanraj/voltkart/app/services"
	"github.com/shashiranjanraj/voltkart/pkg/ctx"
	"github.com/shashiranjanraj/voltkart/pkg/middleware"
	"github.com/shashiranjanraj/voltkart/pkg/resource"
)

const refreshCookie = "voltkart_refresh"

// seven days, matching the refresh token lifetime
const refreshMaxAge = 7 * 24 * 60 * 60

type AuthController struct {
	service *services.AuthService
	users   *services.UserService
}

func NewAuthController() *AuthController {
	return &AuthController{
		service: services.NewAuthService(),
		users:   services.NewUserService(),
	}
}

// Login issues an access token in the body and the refresh token as an
// HttpOnly cookie.
func (ac *AuthController) Login(c *ctx.Context) {
	var input services.LoginInput
	if !c.BindJSON(&input) {
		return
	}

	user, pair, err := ac.service.Login(input)
	if err != nil {
		respondError(c, err)
		return
	}

	ac.setRefreshCookie(c, pair.RefreshToken)
	c.Success(map[string]interface{}{
		"access_token": pair.AccessToken,
		"user":         resources.UserResource{User: user}.ToArray(nil),
	})
}

// Signup registers a storefront customer and logs them in.
func (ac *AuthController) Signup(c *ctx.Context) {
	var input services.SignupInput
	if !c.BindJSON(&input) {
		return
	}

	user, pair, err := ac.service.Signup(input)
	if err != nil {
		respondError(c, err)
		return
	}

	ac.setRefreshCookie(c, pair.RefreshToken)
	c.Created(map[string]interface{}{
		"access_token": pair.AccessToken,
		"user":         resources.UserResource{User: user}.ToArray(nil),
	})
}

// Refresh exchanges the refresh cookie for a new token pair.
func (ac *AuthController) Refresh(c *ctx.Context) {
	token, err := c.Cookie(refreshCookie)
	if err != nil || token == "" {
		c.Unauthorized("Missing refresh token")
		return
	}

	user, pair, err := ac.service.Refresh(token)
	if err != nil {
		respondError(c, err)
		return
	}

	ac.setRefreshCookie(c, pair.RefreshToken)
	c.Success(map[string]interface{}{
		"access_token": pair.AccessToken,
		"user":         resources.UserResource{User: user}.ToArray(nil),
	})
}

// Logout clears the refresh cookie.
func (ac *AuthController) Logout(c *ctx.Context) {
	c.SetCookie(refreshCookie, "", -1, "/api", "", false, true)
	c.Message("Logged out")
}

// Me returns the authenticated account.
func (ac *AuthController) Me(c *ctx.Context) {
	userID, ok := middleware.UserIDFromCtx(c.R)
	if !ok {
		c.Unauthorized()
		return
	}

	user, err := ac.users.Get(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resource.New(resources.UserResource{User: user}).Respond(c.W, 200)
}

func (ac *AuthController) setRefreshCookie(c *ctx.Context, token string) {
	c.SetCookie(refreshCookie, token, refreshMaxAge, "/api", "", false, true)
}
