package review

import (
	"context"

	"github.com/BruksfildServices01/consult-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/review"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
)

type RemoveReview struct {
	reviews domain.Repository
	audit   *audit.Dispatcher
}

func NewRemoveReview(
	reviews domain.Repository,
	audit *audit.Dispatcher,
) *RemoveReview {
	return &RemoveReview{
		reviews: reviews,
		audit:   audit,
	}
}

// Execute apaga a avaliação sem desfazer o fold: a média do consultor
// registra o histórico de notas aceitas, não o conjunto vivo de reviews.
func (uc *RemoveReview) Execute(
	ctx context.Context,
	reviewID string,
) error {

	if err := uc.reviews.Delete(ctx, reviewID); err != nil {
		return httperr.AsNotFound(err, "review_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "review_removed",
		Entity:   "review",
		EntityID: &reviewID,
	})

	return nil
}
