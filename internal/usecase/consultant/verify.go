package consultant

import (
	"context"

	"github.com/BruksfildServices01/consult-scheduler/internal/audit"
	"github.com/BruksfildServices01/consult-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/consultant"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

type VerifyConsultant struct {
	consultants domain.Repository
	feedCache   *cache.ConsultantCache
	audit       *audit.Dispatcher
}

func NewVerifyConsultant(
	consultants domain.Repository,
	feedCache *cache.ConsultantCache,
	audit *audit.Dispatcher,
) *VerifyConsultant {
	return &VerifyConsultant{
		consultants: consultants,
		feedCache:   feedCache,
		audit:       audit,
	}
}

// Execute liga/desliga a verificação — porta de entrada única para
// o flag IsVerified.
func (uc *VerifyConsultant) Execute(
	ctx context.Context,
	consultantID string,
	verified bool,
) (*models.Consultant, error) {

	consultant, err := uc.consultants.GetByID(ctx, consultantID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "consultant_not_found")
	}

	consultant.IsVerified = verified

	if err := uc.consultants.Update(ctx, consultant); err != nil {
		return nil, err
	}

	uc.feedCache.Invalidate(ctx)

	action := "consultant_verified"
	if !verified {
		action = "consultant_unverified"
	}
	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "consultant",
		EntityID: &consultant.ID,
	})

	return consultant, nil
}
