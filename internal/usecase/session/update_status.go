package session

import (
	"context"

	"github.com/BruksfildServices01/consult-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/session"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
	"github.com/BruksfildServices01/consult-scheduler/internal/timezone"
)

type UpdateSessionStatus struct {
	sessions domain.Repository
	audit    *audit.Dispatcher
}

func NewUpdateSessionStatus(
	sessions domain.Repository,
	audit *audit.Dispatcher,
) *UpdateSessionStatus {
	return &UpdateSessionStatus{
		sessions: sessions,
		audit:    audit,
	}
}

// Execute é o único caminho que leva uma sessão a completed —
// pré-condição para avaliá-la depois.
func (uc *UpdateSessionStatus) Execute(
	ctx context.Context,
	sessionID string,
	next domain.Status,
) (*models.Session, error) {

	s, err := uc.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "session_not_found")
	}

	now := timezone.Now()
	if err := domain.Transition(s, next, now); err != nil {
		return nil, err
	}

	if err := uc.sessions.Update(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "session_status_" + string(next),
		Entity:   "session",
		EntityID: &s.ID,
	})

	return s, nil
}
