package consultant

import (
	"context"

	"github.com/BruksfildServices01/consult-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/consultant"
	userDomain "github.com/BruksfildServices01/consult-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateConsultantInput struct {
	UserID      string
	Specialties []string
	Bio         string
	Education   string
	License     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateConsultant struct {
	consultants domain.Repository
	users       userDomain.Repository
	audit       *audit.Dispatcher
}

func NewCreateConsultant(
	consultants domain.Repository,
	users userDomain.Repository,
	audit *audit.Dispatcher,
) *CreateConsultant {
	return &CreateConsultant{
		consultants: consultants,
		users:       users,
		audit:       audit,
	}
}

// Execute cria o perfil de consultor e promove o papel do usuário.
// Perfil nasce não verificado: só o admin libera agendamentos.
func (uc *CreateConsultant) Execute(
	ctx context.Context,
	in CreateConsultantInput,
) (*models.Consultant, error) {

	user, err := uc.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "user_not_found")
	}

	if existing, err := uc.consultants.GetByUserID(ctx, user.ID); err == nil && existing != nil {
		return nil, httperr.ErrBusiness("user_already_consultant")
	}

	user.Role = models.RoleConsultant
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}

	consultant := &models.Consultant{
		UserID:      user.ID,
		Specialties: in.Specialties,
		Bio:         in.Bio,
		Education:   in.Education,
		License:     in.License,
	}

	if err := uc.consultants.Insert(ctx, consultant); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "consultant_created",
		Entity:   "consultant",
		EntityID: &consultant.ID,
	})

	return consultant, nil
}
