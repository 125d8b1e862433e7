package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/voltkart/app/models"
)

func TestSubmitReviewValidatesRating(t *testing.T) {
	setupDB(t)
	product := createProduct(t, "Havells 6A MCB", "245.00", 10)

	svc := NewReviewService()

	for _, rating := range []int{-1, 0, 6, 100} {
		_, err := svc.Submit(1, ReviewInput{
			ProductID: product.ID,
			Rating:    rating,
			Comment:   "solid build quality",
		})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "rating %d must be rejected", rating)
		assert.Contains(t, verr.Fields, "rating")
	}

	review, err := svc.Submit(1, ReviewInput{
		ProductID: product.ID,
		Rating:    5,
		Comment:   "solid build quality",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReviewPending, review.Status)
}

func TestSubmitReviewRequiresActiveProduct(t *testing.T) {
	setupDB(t)

	svc := NewReviewService()

	_, err := svc.Submit(1, ReviewInput{ProductID: 9999, Rating: 4, Comment: "ok"})

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestOnlyApprovedReviewsReachTheStorefront(t *testing.T) {
	setupDB(t)
	product := createProduct(t, "Polycab 1.5 sqmm Wire", "1620.00", 10)

	svc := NewReviewService()

	approved, err := svc.Submit(1, ReviewInput{ProductID: product.ID, Rating: 5, Comment: "great wire"})
	require.NoError(t, err)
	_, err = svc.Submit(2, ReviewInput{ProductID: product.ID, Rating: 1, Comment: "spam"})
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(approved.ID, ReviewStatusInput{Status: models.ReviewApproved}))

	visible, err := svc.ApprovedForProduct(product.ID)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, approved.ID, visible[0].ID)
}
