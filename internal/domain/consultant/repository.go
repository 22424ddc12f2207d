package consultant

import (
	"context"

	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

// Filter é o contrato público de busca de consultores.
// IsVerified nil significa "sem filtro" — o default de produto
// (somente verificados) é aplicado pelo usecase, não aqui.
type Filter struct {
	IsVerified  *bool
	Search      string
	Specialties []string
}

type Repository interface {
	Insert(
		ctx context.Context,
		c *models.Consultant,
	) error

	Update(
		ctx context.Context,
		c *models.Consultant,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error

	GetByID(
		ctx context.Context,
		id string,
	) (*models.Consultant, error)

	GetByUserID(
		ctx context.Context,
		userID string,
	) (*models.Consultant, error)

	Query(
		ctx context.Context,
		f Filter,
	) ([]models.Consultant, error)
}
