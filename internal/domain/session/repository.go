package session

import (
	"context"

	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

type Repository interface {
	Insert(
		ctx context.Context,
		s *models.Session,
	) error

	Update(
		ctx context.Context,
		s *models.Session,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error

	GetByID(
		ctx context.Context,
		id string,
	) (*models.Session, error)

	FindAll(
		ctx context.Context,
	) ([]models.Session, error)

	FindByConsultant(
		ctx context.Context,
		consultantID string,
	) ([]models.Session, error)

	FindByClient(
		ctx context.Context,
		clientID string,
	) ([]models.Session, error)
}
