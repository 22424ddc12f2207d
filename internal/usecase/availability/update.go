package availability

import (
	"context"
	"time"

	"github.com/BruksfildServices01/consult-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/locking"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// Campos nil não são alterados (patch parcial)
type UpdateAvailabilityInput struct {
	SlotID      string
	StartTime   *time.Time
	EndTime     *time.Time
	IsAvailable *bool
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAvailability struct {
	slots domain.Repository
	locks *locking.KeyedMutex
	audit *audit.Dispatcher
}

func NewUpdateAvailability(
	slots domain.Repository,
	locks *locking.KeyedMutex,
	audit *audit.Dispatcher,
) *UpdateAvailability {
	return &UpdateAvailability{
		slots: slots,
		locks: locks,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAvailability) Execute(
	ctx context.Context,
	in UpdateAvailabilityInput,
) (*models.Availability, error) {

	slot, err := uc.slots.GetByID(ctx, in.SlotID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "availability_not_found")
	}

	// Revalidação usa o intervalo RESULTANTE (campo antigo mantido
	// quando não veio no patch)
	if in.StartTime != nil {
		slot.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		slot.EndTime = *in.EndTime
	}
	if in.IsAvailable != nil {
		slot.IsAvailable = *in.IsAvailable
	}

	rng := domain.TimeRange{Start: slot.StartTime, End: slot.EndTime}
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	uc.locks.Lock(slot.ConsultantID)
	defer uc.locks.Unlock(slot.ConsultantID)

	if slot.IsAvailable {
		count, err := uc.slots.FindOverlapping(
			ctx,
			slot.ConsultantID,
			slot.StartTime,
			slot.EndTime,
			slot.ID,
		)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, httperr.ErrBusiness("availability_conflict")
		}
	}

	if err := uc.slots.Update(ctx, slot); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "availability_updated",
		Entity:   "availability",
		EntityID: &slot.ID,
	})

	return slot, nil
}
