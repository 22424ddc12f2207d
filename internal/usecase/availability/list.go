package availability

import (
	"context"

	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/availability"
	consultantDomain "github.com/BruksfildServices01/consult-scheduler/internal/domain/consultant"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

type ListAvailabilities struct {
	slots       domain.Repository
	consultants consultantDomain.Repository
}

func NewListAvailabilities(
	slots domain.Repository,
	consultants consultantDomain.Repository,
) *ListAvailabilities {
	return &ListAvailabilities{
		slots:       slots,
		consultants: consultants,
	}
}

func (uc *ListAvailabilities) Execute(
	ctx context.Context,
	consultantID string,
) ([]models.Availability, error) {

	consultant, err := uc.consultants.GetByID(ctx, consultantID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "consultant_not_found")
	}

	slots, err := uc.slots.FindByConsultant(ctx, consultant.ID)
	if err != nil {
		return nil, err
	}

	if slots == nil {
		slots = []models.Availability{}
	}

	return slots, nil
}
