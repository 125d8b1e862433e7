package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/app/repositories"
	"github.com/shashiranjanraj/voltkart/pkg/orm"
	"github.com/shashiranjanraj/voltkart/pkg/validate"
)

// ReviewInput is a customer review submission. Rating is bounded 1 to 5 at
// the server, whatever the client sends.
type ReviewInput struct {
	ProductID uint   `json:"product_id" validate:"required"`
	Rating    int    `json:"rating"     validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment"    validate:"required,max=2000"`
}

// ReviewStatusInput moves a review through moderation.
type ReviewStatusInput struct {
	Status string `json:"status" validate:"required,in=pending,approved,rejected"`
}

// ReviewService handles review submission and moderation.
type ReviewService struct {
	reviews  *repositories.ReviewRepository
	products *repositories.ProductRepository
}

func NewReviewService() *ReviewService {
	return &ReviewService{
		reviews:  repositories.NewReviewRepository(),
		products: repositories.NewProductRepository(),
	}
}

// Submit stores a new review in pending status.
func (s *ReviewService) Submit(userID uint, input ReviewInput) (models.Review, error) {
	if errs := validate.Struct(input); validate.HasErrors(errs) {
		return models.Review{}, &ValidationError{Fields: errs}
	}

	if _, err := s.products.FindActive(input.ProductID); errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Review{}, &NotFoundError{Resource: "Product", ID: fmt.Sprint(input.ProductID)}
	} else if err != nil {
		return models.Review{}, err
	}

	review := models.Review{
		ProductID: input.ProductID,
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Status:    models.ReviewPending,
	}
	if err := s.reviews.Create(&review); err != nil {
		return models.Review{}, err
	}
	return review, nil
}

// All returns one page of reviews for moderation.
func (s *ReviewService) All(status string, page, perPage int) ([]models.Review, orm.Pagination, error) {
	if status != "" && status != models.ReviewPending &&
		status != models.ReviewApproved && status != models.ReviewRejected {
		return nil, orm.Pagination{}, NewValidationError("status", "The selected status is invalid.")
	}
	return s.reviews.All(status, page, perPage)
}

// SetStatus approves or rejects a review.
func (s *ReviewService) SetStatus(id uint, input ReviewStatusInput) error {
	if errs := validate.Struct(input); validate.HasErrors(errs) {
		return &ValidationError{Fields: errs}
	}

	ok, err := s.reviews.SetStatus(id, input.Status)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Resource: "Review", ID: fmt.Sprint(id)}
	}
	return nil
}

// ApprovedForProduct returns a product's published reviews.
func (s *ReviewService) ApprovedForProduct(productID uint) ([]models.Review, error) {
	return s.reviews.ApprovedForProduct(productID)
}
