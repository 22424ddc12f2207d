package availability

import (
	"context"

	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

type GetAvailability struct {
	slots domain.Repository
}

func NewGetAvailability(slots domain.Repository) *GetAvailability {
	return &GetAvailability{slots: slots}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	slotID string,
) (*models.Availability, error) {

	slot, err := uc.slots.GetByID(ctx, slotID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "availability_not_found")
	}

	return slot, nil
}
