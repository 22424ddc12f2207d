package review

import (
	"context"

	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

type Repository interface {
	Insert(
		ctx context.Context,
		r *models.Review,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error

	GetByID(
		ctx context.Context,
		id string,
	) (*models.Review, error)

	// FindBySession retorna nil (sem erro) quando a sessão ainda
	// não tem avaliação.
	FindBySession(
		ctx context.Context,
		sessionID string,
	) (*models.Review, error)

	FindByConsultant(
		ctx context.Context,
		consultantID string,
	) ([]models.Review, error)

	FindAll(
		ctx context.Context,
	) ([]models.Review, error)
}
