package consultant

import (
	"context"

	"github.com/BruksfildServices01/consult-scheduler/internal/audit"
	"github.com/BruksfildServices01/consult-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/consultant"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

// Patch de perfil: rating, reviewCount e isVerified ficam de fora
// de propósito — só o fold e a verificação mexem neles.
type UpdateConsultantInput struct {
	ConsultantID string
	Specialties  *[]string
	Bio          *string
	Education    *string
	License      *string
}

type UpdateConsultant struct {
	consultants domain.Repository
	feedCache   *cache.ConsultantCache
	audit       *audit.Dispatcher
}

func NewUpdateConsultant(
	consultants domain.Repository,
	feedCache *cache.ConsultantCache,
	audit *audit.Dispatcher,
) *UpdateConsultant {
	return &UpdateConsultant{
		consultants: consultants,
		feedCache:   feedCache,
		audit:       audit,
	}
}

func (uc *UpdateConsultant) Execute(
	ctx context.Context,
	in UpdateConsultantInput,
) (*models.Consultant, error) {

	consultant, err := uc.consultants.GetByID(ctx, in.ConsultantID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "consultant_not_found")
	}

	if in.Specialties != nil {
		consultant.Specialties = *in.Specialties
	}
	if in.Bio != nil {
		consultant.Bio = *in.Bio
	}
	if in.Education != nil {
		consultant.Education = *in.Education
	}
	if in.License != nil {
		consultant.License = *in.License
	}

	if err := uc.consultants.Update(ctx, consultant); err != nil {
		return nil, err
	}

	uc.feedCache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		Action:   "consultant_updated",
		Entity:   "consultant",
		EntityID: &consultant.ID,
	})

	return consultant, nil
}
