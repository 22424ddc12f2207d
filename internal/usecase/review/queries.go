package review

import (
	"context"

	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/review"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

type ReviewQueries struct {
	reviews domain.Repository
}

func NewReviewQueries(reviews domain.Repository) *ReviewQueries {
	return &ReviewQueries{reviews: reviews}
}

func (uc *ReviewQueries) Get(
	ctx context.Context,
	reviewID string,
) (*models.Review, error) {

	r, err := uc.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "review_not_found")
	}
	return r, nil
}

func (uc *ReviewQueries) ListAll(
	ctx context.Context,
) ([]models.Review, error) {
	return uc.reviews.FindAll(ctx)
}

func (uc *ReviewQueries) ListByConsultant(
	ctx context.Context,
	consultantID string,
) ([]models.Review, error) {
	return uc.reviews.FindByConsultant(ctx, consultantID)
}
