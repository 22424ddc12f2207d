package review

import (
	"context"

	"github.com/BruksfildServices01/consult-scheduler/internal/audit"
	clientDomain "github.com/BruksfildServices01/consult-scheduler/internal/domain/client"
	consultantDomain "github.com/BruksfildServices01/consult-scheduler/internal/domain/consultant"
	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/review"
	sessionDomain "github.com/BruksfildServices01/consult-scheduler/internal/domain/session"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/locking"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReviewInput struct {
	ConsultantID string
	ClientID     string
	SessionID    string
	Rating       int
	Comment      string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReview struct {
	reviews     domain.Repository
	sessions    sessionDomain.Repository
	consultants consultantDomain.Repository
	clients     clientDomain.Repository
	aggregator  *RatingAggregator
	locks       *locking.KeyedMutex
	audit       *audit.Dispatcher
}

func NewCreateReview(
	reviews domain.Repository,
	sessions sessionDomain.Repository,
	consultants consultantDomain.Repository,
	clients clientDomain.Repository,
	aggregator *RatingAggregator,
	locks *locking.KeyedMutex,
	audit *audit.Dispatcher,
) *CreateReview {
	return &CreateReview{
		reviews:     reviews,
		sessions:    sessions,
		consultants: consultants,
		clients:     clients,
		aggregator:  aggregator,
		locks:       locks,
		audit:       audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// As barreiras rodam nesta ordem fixa; a primeira que falhar aborta
// sem persistir nada.
func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*models.Review, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrBusiness("invalid_rating")
	}

	// --------------------------------------------------
	// 1️⃣ Consultor, cliente e sessão existem
	// --------------------------------------------------
	consultant, err := uc.consultants.GetByID(ctx, in.ConsultantID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "consultant_not_found")
	}

	client, err := uc.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "client_not_found")
	}

	s, err := uc.sessions.GetByID(ctx, in.SessionID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "session_not_found")
	}

	// --------------------------------------------------
	// 2️⃣ Sessão concluída
	// --------------------------------------------------
	if sessionDomain.Status(s.Status) != sessionDomain.StatusCompleted {
		return nil, httperr.ErrBusiness("session_not_completed")
	}

	// A sessão tem um único consultor dono, então o lock do consultor
	// também serializa a unicidade por sessão e o fold da nota.
	uc.locks.Lock(s.ConsultantID)
	defer uc.locks.Unlock(s.ConsultantID)

	// --------------------------------------------------
	// 3️⃣ Uma avaliação por sessão
	// --------------------------------------------------
	existing, err := uc.reviews.FindBySession(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness("session_already_reviewed")
	}

	// --------------------------------------------------
	// 4️⃣ Participantes batem com a sessão
	// --------------------------------------------------
	if s.ConsultantID != consultant.ID || s.ClientID != client.ID {
		return nil, httperr.ErrBusiness("participants_mismatch")
	}

	// --------------------------------------------------
	// 5️⃣ Persistência + fold da reputação
	// --------------------------------------------------
	r := &models.Review{
		ConsultantID: consultant.ID,
		ClientID:     client.ID,
		SessionID:    s.ID,
		Rating:       in.Rating,
		Comment:      in.Comment,
	}

	if err := uc.reviews.Insert(ctx, r); err != nil {
		return nil, err
	}

	if _, err := uc.aggregator.fold(ctx, consultant.ID, in.Rating); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "review_created",
		Entity:   "review",
		EntityID: &r.ID,
	})

	return r, nil
}
