package availability

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/availability"
	consultantDomain "github.com/BruksfildServices01/consult-scheduler/internal/domain/consultant"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
	"github.com/BruksfildServices01/consult-scheduler/internal/timezone"
)

type ListAvailableForDay struct {
	slots       domain.Repository
	consultants consultantDomain.Repository
}

func NewListAvailableForDay(
	slots domain.Repository,
	consultants consultantDomain.Repository,
) *ListAvailableForDay {
	return &ListAvailableForDay{
		slots:       slots,
		consultants: consultants,
	}
}

// Execute lista janelas ativas cujo início cai no dia informado,
// em ordem crescente. Dia sem janelas devolve lista vazia, não erro.
func (uc *ListAvailableForDay) Execute(
	ctx context.Context,
	consultantID string,
	day time.Time,
) ([]models.Availability, error) {

	consultant, err := uc.consultants.GetByID(ctx, consultantID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "consultant_not_found")
	}

	dayStart, dayEnd := timezone.DayBounds(day)

	slots, err := uc.slots.FindAvailableForDay(
		ctx,
		consultant.ID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	if slots == nil {
		slots = []models.Availability{}
	}

	return slots, nil
}
