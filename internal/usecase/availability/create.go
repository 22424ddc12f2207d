package availability

import (
	"context"

	"github.com/BruksfildServices01/consult-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/availability"
	consultantDomain "github.com/BruksfildServices01/consult-scheduler/internal/domain/consultant"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/locking"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAvailabilityInput struct {
	ConsultantID string
	Range        domain.TimeRange
	IsAvailable  bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateAvailability struct {
	slots       domain.Repository
	consultants consultantDomain.Repository
	locks       *locking.KeyedMutex
	audit       *audit.Dispatcher
}

func NewCreateAvailability(
	slots domain.Repository,
	consultants consultantDomain.Repository,
	locks *locking.KeyedMutex,
	audit *audit.Dispatcher,
) *CreateAvailability {
	return &CreateAvailability{
		slots:       slots,
		consultants: consultants,
		locks:       locks,
		audit:       audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAvailability) Execute(
	ctx context.Context,
	in CreateAvailabilityInput,
) (*models.Availability, error) {

	// --------------------------------------------------
	// 1️⃣ Consultor
	// --------------------------------------------------
	consultant, err := uc.consultants.GetByID(ctx, in.ConsultantID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "consultant_not_found")
	}

	// --------------------------------------------------
	// 2️⃣ Intervalo válido
	// --------------------------------------------------
	if err := in.Range.Validate(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Verificação + inserção serializadas por consultor
	// --------------------------------------------------
	uc.locks.Lock(consultant.ID)
	defer uc.locks.Unlock(consultant.ID)

	if in.IsAvailable {
		count, err := uc.slots.FindOverlapping(
			ctx,
			consultant.ID,
			in.Range.Start,
			in.Range.End,
			"",
		)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, httperr.ErrBusiness("availability_conflict")
		}
	}

	slot := &models.Availability{
		ConsultantID: consultant.ID,
		StartTime:    in.Range.Start,
		EndTime:      in.Range.End,
		IsAvailable:  in.IsAvailable,
	}

	if err := uc.slots.Insert(ctx, slot); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "availability_created",
		Entity:   "availability",
		EntityID: &slot.ID,
	})

	return slot, nil
}
