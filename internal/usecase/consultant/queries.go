package consultant

import (
	"context"

	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/consultant"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

type ConsultantQueries struct {
	consultants domain.Repository
}

func NewConsultantQueries(consultants domain.Repository) *ConsultantQueries {
	return &ConsultantQueries{consultants: consultants}
}

func (uc *ConsultantQueries) Get(
	ctx context.Context,
	consultantID string,
) (*models.Consultant, error) {

	consultant, err := uc.consultants.GetByID(ctx, consultantID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "consultant_not_found")
	}
	return consultant, nil
}

func (uc *ConsultantQueries) GetByUser(
	ctx context.Context,
	userID string,
) (*models.Consultant, error) {

	consultant, err := uc.consultants.GetByUserID(ctx, userID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "consultant_not_found")
	}
	return consultant, nil
}

// ListPending lista consultores aguardando verificação (visão admin)
func (uc *ConsultantQueries) ListPending(
	ctx context.Context,
) ([]models.Consultant, error) {

	notVerified := false
	return uc.consultants.Query(ctx, domain.Filter{
		IsVerified: &notVerified,
	})
}
