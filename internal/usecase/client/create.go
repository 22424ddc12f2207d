package client

import (
	"context"

	"github.com/BruksfildServices01/consult-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/client"
	userDomain "github.com/BruksfildServices01/consult-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

type CreateClient struct {
	clients domain.Repository
	users   userDomain.Repository
	audit   *audit.Dispatcher
}

func NewCreateClient(
	clients domain.Repository,
	users userDomain.Repository,
	audit *audit.Dispatcher,
) *CreateClient {
	return &CreateClient{
		clients: clients,
		users:   users,
		audit:   audit,
	}
}

// Execute cria o perfil de cliente e ajusta o papel do usuário
func (uc *CreateClient) Execute(
	ctx context.Context,
	userID string,
) (*models.Client, error) {

	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "user_not_found")
	}

	if existing, err := uc.clients.GetByUserID(ctx, user.ID); err == nil && existing != nil {
		return nil, httperr.ErrBusiness("user_already_client")
	}

	user.Role = models.RoleClient
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}

	client := &models.Client{UserID: user.ID}
	if err := uc.clients.Insert(ctx, client); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	return client, nil
}
