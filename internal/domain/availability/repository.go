package availability

import (
	"context"
	"time"

	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

type Repository interface {
	// -------- Slot CRUD --------
	Insert(
		ctx context.Context,
		slot *models.Availability,
	) error

	Update(
		ctx context.Context,
		slot *models.Availability,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error

	GetByID(
		ctx context.Context,
		id string,
	) (*models.Availability, error)

	// -------- Consultas --------
	FindByConsultant(
		ctx context.Context,
		consultantID string,
	) ([]models.Availability, error)

	// FindOverlapping conta janelas ativas do consultor que cruzam
	// [start, end), ignorando excludeID quando não vazio.
	FindOverlapping(
		ctx context.Context,
		consultantID string,
		start time.Time,
		end time.Time,
		excludeID string,
	) (int64, error)

	// FindAvailableForDay lista janelas ativas cujo início cai dentro
	// do dia [dayStart, dayEnd), ordenadas por início.
	FindAvailableForDay(
		ctx context.Context,
		consultantID string,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Availability, error)
}
