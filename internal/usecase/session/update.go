package session

import (
	"context"
	"time"

	"github.com/BruksfildServices01/consult-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/session"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
	"github.com/BruksfildServices01/consult-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// Campos nil não são alterados. Status presente no patch passa
// pela mesma validação de transição do UpdateSessionStatus.
type UpdateSessionInput struct {
	SessionID string

	Date          *time.Time
	Status        *domain.Status
	Notes         *string
	MessengerID   *string
	MessengerType *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateSession struct {
	sessions domain.Repository
	audit    *audit.Dispatcher
}

func NewUpdateSession(
	sessions domain.Repository,
	audit *audit.Dispatcher,
) *UpdateSession {
	return &UpdateSession{
		sessions: sessions,
		audit:    audit,
	}
}

func (uc *UpdateSession) Execute(
	ctx context.Context,
	in UpdateSessionInput,
) (*models.Session, error) {

	s, err := uc.sessions.GetByID(ctx, in.SessionID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "session_not_found")
	}

	if in.Status != nil {
		now := timezone.Now()
		if err := domain.Transition(s, *in.Status, now); err != nil {
			return nil, err
		}
	}

	if in.Date != nil {
		s.Date = *in.Date
	}
	if in.Notes != nil {
		s.Notes = *in.Notes
	}
	if in.MessengerID != nil {
		s.MessengerID = *in.MessengerID
	}
	if in.MessengerType != nil {
		s.MessengerType = *in.MessengerType
	}

	if err := uc.sessions.Update(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "session_updated",
		Entity:   "session",
		EntityID: &s.ID,
	})

	return s, nil
}
