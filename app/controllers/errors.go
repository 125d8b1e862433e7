// Package controllers translates HTTP requests into service calls and
// service results (or errors) back into JSON envelopes.
package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/app/services"
	"github.com/shashiranjanraj/voltkart/pkg/ctx"
	"github.com/shashiranjanraj/voltkart/pkg/logger"
)

// respondError maps the service error taxonomy onto HTTP statuses. Anything
// untyped is a 500 with the detail kept out of the response body.
func respondError(c *ctx.Context, err error) {
	var (
		validation *services.ValidationError
		notFound   *services.NotFoundError
		conflict   *services.ConflictError
		transition *models.InvalidTransitionError
		external   *services.ExternalError
	)

	switch {
	case errors.As(err, &validation):
		c.ValidationError(validation.Fields)
	case errors.As(err, &notFound):
		c.NotFound(notFound.Error())
	case errors.As(err, &conflict):
		c.Conflict(conflict.Error())
	case errors.As(err, &transition):
		c.Conflict(transition.Error())
	case errors.As(err, &external):
		c.Error(http.StatusBadGateway, external.Error())
	default:
		logger.Error("request failed", "path", c.Path(), "error", err)
		c.Error(http.StatusInternalServerError, "Internal server error")
	}
}
