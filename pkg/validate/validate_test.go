package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/voltkart/pkg/validate"
)

type reviewInput struct {
	ProductID uint   `json:"product_id" validate:"required"`
	Rating    int    `json:"rating"     validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment"    validate:"required,max=2000"`
}

func TestValidReview(t *testing.T) {
	errs := validate.Struct(reviewInput{ProductID: 7, Rating: 4, Comment: "solid MCB, fast delivery"})
	assert.False(t, validate.HasErrors(errs), "expected no errors, got: %v", errs)
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(reviewInput{})
	assert.True(t, validate.HasErrors(errs))
	assert.Contains(t, errs, "product_id")
	assert.Contains(t, errs, "rating")
	assert.Contains(t, errs, "comment")
}

func TestRatingBounds(t *testing.T) {
	for _, rating := range []int{-1, 6, 100} {
		errs := validate.Struct(reviewInput{ProductID: 1, Rating: rating, Comment: "x"})
		assert.Contains(t, errs, "rating", "rating %d should be rejected", rating)
	}
	for rating := 1; rating <= 5; rating++ {
		errs := validate.Struct(reviewInput{ProductID: 1, Rating: rating, Comment: "x"})
		assert.NotContains(t, errs, "rating", "rating %d should be accepted", rating)
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	assert.Contains(t, validate.Struct(in{Email: "not-an-email"}), "email")
	assert.Empty(t, validate.Struct(in{Email: "buyer@example.com"}))
}

func TestInRule(t *testing.T) {
	type in struct {
		Status string `json:"status" validate:"required,in=pending,approved,rejected"`
	}
	assert.Contains(t, validate.Struct(in{Status: "archived"}), "status")
	assert.Empty(t, validate.Struct(in{Status: "approved"}))
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Datasheet string `json:"datasheet_url" validate:"nullable,url"`
	}
	assert.Empty(t, validate.Struct(in{Datasheet: ""}))
	assert.Contains(t, validate.Struct(in{Datasheet: "not-a-url"}), "datasheet_url")
}

func TestConfirmedRule(t *testing.T) {
	type in struct {
		Password             string `json:"password"              validate:"required,min=8"`
		PasswordConfirmation string `json:"password_confirmation" validate:"confirmed"`
	}
	assert.Contains(t, validate.Struct(in{Password: "secret123", PasswordConfirmation: "wrong"}), "password_confirmation")
	assert.Empty(t, validate.Struct(in{Password: "secret123", PasswordConfirmation: "secret123"}))
}

func TestAlphaDashRule(t *testing.T) {
	type in struct {
		Slug string `json:"slug" validate:"required,alpha_dash"`
	}
	assert.Empty(t, validate.Struct(in{Slug: "mcb-32a_c-curve"}))
	assert.Contains(t, validate.Struct(in{Slug: "mcb 32a!"}), "slug")
}

func TestBetweenRule(t *testing.T) {
	type in struct {
		Discount float64 `json:"discount" validate:"required,between=0,100"`
	}
	assert.Contains(t, validate.Struct(in{Discount: 150}), "discount")
	assert.Empty(t, validate.Struct(in{Discount: 5}))
}
