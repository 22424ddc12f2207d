package client

import (
	"context"

	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

type ClientQueries struct {
	clients domain.Repository
}

func NewClientQueries(clients domain.Repository) *ClientQueries {
	return &ClientQueries{clients: clients}
}

func (uc *ClientQueries) Get(
	ctx context.Context,
	clientID string,
) (*models.Client, error) {

	client, err := uc.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "client_not_found")
	}
	return client, nil
}

func (uc *ClientQueries) GetByUser(
	ctx context.Context,
	userID string,
) (*models.Client, error) {

	client, err := uc.clients.GetByUserID(ctx, userID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "client_not_found")
	}
	return client, nil
}

func (uc *ClientQueries) ListAll(
	ctx context.Context,
) ([]models.Client, error) {
	return uc.clients.FindAll(ctx)
}
