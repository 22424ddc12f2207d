package session

import (
	"context"
	"time"

	"github.com/BruksfildServices01/consult-scheduler/internal/audit"
	clientDomain "github.com/BruksfildServices01/consult-scheduler/internal/domain/client"
	consultantDomain "github.com/BruksfildServices01/consult-scheduler/internal/domain/consultant"
	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/session"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateSessionInput struct {
	ConsultantID string
	ClientID     string
	Date         time.Time

	Notes         string
	MessengerID   string
	MessengerType string
}

// ======================================================
// USE CASE
// ======================================================

type CreateSession struct {
	sessions    domain.Repository
	consultants consultantDomain.Repository
	clients     clientDomain.Repository
	audit       *audit.Dispatcher
}

func NewCreateSession(
	sessions domain.Repository,
	consultants consultantDomain.Repository,
	clients clientDomain.Repository,
	audit *audit.Dispatcher,
) *CreateSession {
	return &CreateSession{
		sessions:    sessions,
		consultants: consultants,
		clients:     clients,
		audit:       audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateSession) Execute(
	ctx context.Context,
	in CreateSessionInput,
) (*models.Session, error) {

	// --------------------------------------------------
	// 1️⃣ Consultor
	// --------------------------------------------------
	consultant, err := uc.consultants.GetByID(ctx, in.ConsultantID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "consultant_not_found")
	}

	// --------------------------------------------------
	// 2️⃣ Cliente
	// --------------------------------------------------
	client, err := uc.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "client_not_found")
	}

	// --------------------------------------------------
	// 3️⃣ Consultor verificado
	// --------------------------------------------------
	if !consultant.IsVerified {
		return nil, httperr.ErrBusiness("consultant_not_verified")
	}

	// --------------------------------------------------
	// 4️⃣ Criação (status inicial centralizado)
	// --------------------------------------------------
	// Não há checagem contra janelas de disponibilidade aqui:
	// janelas publicam capacidade, não reservam horário.
	s := &models.Session{
		ConsultantID:  consultant.ID,
		ClientID:      client.ID,
		Date:          in.Date,
		Status:        string(domain.InitialStatus()),
		Notes:         in.Notes,
		MessengerID:   in.MessengerID,
		MessengerType: in.MessengerType,
	}

	if err := uc.sessions.Insert(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "session_created",
		Entity:   "session",
		EntityID: &s.ID,
	})

	return s, nil
}
