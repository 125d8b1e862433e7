package controllers

import (
	"fmt"

	"github.com/shashiranjanraj/voltkart/app/services"
	"github.com/shashiranjanraj/voltkart/config"
	"github.com/shashiranjanraj/voltkart/pkg/ctx"
	"github.com/shashiranjanraj/voltkart/pkg/mail"
	"github.com/shashiranjanraj/voltkart/pkg/middleware"
)

// StorefrontScope is the service-token scope granted to the client app for
// its read-only endpoints.
const StorefrontScope = "storefront"

// ClientController serves the storefront's service plumbing: the scoped
// credential and the contact form.
type ClientController struct{}

func NewClientController() *ClientController {
	return &ClientController{}
}

// Token issues a short-lived storefront service token. The client app
// fetches one at boot and sends it on read endpoints via X-Service-Token.
func (cc *ClientController) Token(c *ctx.Context) {
	token, err := middleware.IssueServiceToken(StorefrontScope)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Success(map[string]interface{}{
		"token":      token,
		"header":     middleware.ServiceHeader,
		"expires_in": int(middleware.ServiceTokenTTL.Seconds()),
	})
}

// ContactInput is the storefront contact form.
type ContactInput struct {
	Name    string `json:"name"    validate:"required,max=255"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}

// Contact forwards a storefront message to the admin inbox. A mail failure
// is reported as an upstream error, not a crash.
func (cc *ClientController) Contact(c *ctx.Context) {
	admin := config.AdminEmail()
	if admin == "" {
		respondError(c, &services.ExternalError{
			Service: "mail",
			Err:     fmt.Errorf("ADMIN_EMAIL is not configured"),
		})
		return
	}

	var input ContactInput
	if !c.BindJSON(&input) {
		return
	}

	body := fmt.Sprintf(`
		<h3>Storefront contact message</h3>
		<p><strong>From:</strong> %s &lt;%s&gt;</p>
		<p>%s</p>`,
		input.Name, input.Email, input.Message)

	err := mail.To(admin).
		Subject("Voltkart contact: " + input.Name).
		Body(body).
		Send()
	if err != nil {
		respondError(c, &services.ExternalError{Service: "mail", Err: err})
		return
	}

	c.Message("Message sent")
}
