package consultant

import (
	"context"

	"github.com/BruksfildServices01/consult-scheduler/internal/audit"
	"github.com/BruksfildServices01/consult-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/consultant"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
)

type RemoveConsultant struct {
	consultants domain.Repository
	feedCache   *cache.ConsultantCache
	audit       *audit.Dispatcher
}

func NewRemoveConsultant(
	consultants domain.Repository,
	feedCache *cache.ConsultantCache,
	audit *audit.Dispatcher,
) *RemoveConsultant {
	return &RemoveConsultant{
		consultants: consultants,
		feedCache:   feedCache,
		audit:       audit,
	}
}

func (uc *RemoveConsultant) Execute(
	ctx context.Context,
	consultantID string,
) error {

	if err := uc.consultants.Delete(ctx, consultantID); err != nil {
		return httperr.AsNotFound(err, "consultant_not_found")
	}

	uc.feedCache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		Action:   "consultant_removed",
		Entity:   "consultant",
		EntityID: &consultantID,
	})

	return nil
}
