package session

import (
	"context"

	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/session"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

type SessionQueries struct {
	sessions domain.Repository
}

func NewSessionQueries(sessions domain.Repository) *SessionQueries {
	return &SessionQueries{sessions: sessions}
}

func (uc *SessionQueries) Get(
	ctx context.Context,
	sessionID string,
) (*models.Session, error) {

	s, err := uc.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "session_not_found")
	}
	return s, nil
}

func (uc *SessionQueries) ListAll(
	ctx context.Context,
) ([]models.Session, error) {
	return uc.sessions.FindAll(ctx)
}

func (uc *SessionQueries) ListByConsultant(
	ctx context.Context,
	consultantID string,
) ([]models.Session, error) {
	return uc.sessions.FindByConsultant(ctx, consultantID)
}

func (uc *SessionQueries) ListByClient(
	ctx context.Context,
	clientID string,
) ([]models.Session, error) {
	return uc.sessions.FindByClient(ctx, clientID)
}
