package repositories

import (
	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/pkg/orm"
)

// ReviewRepository handles database operations for Review.
type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

// Create persists a new review.
func (r *ReviewRepository) Create(review *models.Review) error {
	return orm.DB().Create(review)
}

// FindByID loads one review.
func (r *ReviewRepository) FindByID(id uint) (models.Review, error) {
	var review models.Review
	err := orm.DB().Model(&models.Review{}).Where("id = ?", id).First(&review)
	return review, err
}

// All returns one page of reviews for moderation, optionally filtered by
// status, newest first.
func (r *ReviewRepository) All(status string, page, perPage int) ([]models.Review, orm.Pagination, error) {
	q := orm.DB().Model(&models.Review{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var reviews []models.Review
	p, err := q.Preload("Product").Preload("User").
		Order("created_at desc").
		Paginate(page, perPage, &reviews)
	return reviews, p, err
}

// ApprovedForProduct returns a product's approved reviews, newest first.
func (r *ReviewRepository) ApprovedForProduct(productID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := orm.DB().Model(&models.Review{}).
		Where("product_id = ? AND status = ?", productID, models.ReviewApproved).
		Preload("User").
		Order("created_at desc").
		Get(&reviews)
	return reviews, err
}

// SetStatus moves a review to a moderation status and reports whether the
// row existed.
func (r *ReviewRepository) SetStatus(id uint, status string) (bool, error) {
	n, err := orm.DB().Model(&models.Review{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status})
	return n > 0, err
}
