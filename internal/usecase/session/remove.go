package session

import (
	"context"

	"github.com/BruksfildServices01/consult-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/session"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
)

type RemoveSession struct {
	sessions domain.Repository
	audit    *audit.Dispatcher
}

func NewRemoveSession(
	sessions domain.Repository,
	audit *audit.Dispatcher,
) *RemoveSession {
	return &RemoveSession{
		sessions: sessions,
		audit:    audit,
	}
}

// Execute é remoção administrativa, independente da máquina de
// estados: apaga a sessão em qualquer status.
func (uc *RemoveSession) Execute(
	ctx context.Context,
	sessionID string,
) error {

	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		return httperr.AsNotFound(err, "session_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "session_removed",
		Entity:   "session",
		EntityID: &sessionID,
	})

	return nil
}
