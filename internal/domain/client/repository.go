package client

import (
	"context"

	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

type Repository interface {
	Insert(
		ctx context.Context,
		c *models.Client,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error

	GetByID(
		ctx context.Context,
		id string,
	) (*models.Client, error)

	GetByUserID(
		ctx context.Context,
		userID string,
	) (*models.Client, error)

	FindAll(
		ctx context.Context,
	) ([]models.Client, error)
}
