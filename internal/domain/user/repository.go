package user

import (
	"context"

	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

type Repository interface {
	Insert(
		ctx context.Context,
		u *models.User,
	) error

	Update(
		ctx context.Context,
		u *models.User,
	) error

	GetByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	GetByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)
}
