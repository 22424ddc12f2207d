package availability

import (
	"context"

	"github.com/BruksfildServices01/consult-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
)

type RemoveAvailability struct {
	slots domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveAvailability(
	slots domain.Repository,
	audit *audit.Dispatcher,
) *RemoveAvailability {
	return &RemoveAvailability{
		slots: slots,
		audit: audit,
	}
}

// Execute remove a janela de forma definitiva. Remover janela
// inexistente é erro, não no-op. Sessões já criadas não são afetadas.
func (uc *RemoveAvailability) Execute(
	ctx context.Context,
	slotID string,
) error {

	if err := uc.slots.Delete(ctx, slotID); err != nil {
		return httperr.AsNotFound(err, "availability_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "availability_removed",
		Entity:   "availability",
		EntityID: &slotID,
	})

	return nil
}
