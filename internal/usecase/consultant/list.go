package consultant

import (
	"context"

	"github.com/BruksfildServices01/consult-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/consultant"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

type ListConsultants struct {
	consultants domain.Repository
	feedCache   *cache.ConsultantCache
}

func NewListConsultants(
	consultants domain.Repository,
	feedCache *cache.ConsultantCache,
) *ListConsultants {
	return &ListConsultants{
		consultants: consultants,
		feedCache:   feedCache,
	}
}

// Execute aplica o default de produto AQUI, não na camada HTTP:
// sem filtro explícito, só consultores verificados aparecem.
func (uc *ListConsultants) Execute(
	ctx context.Context,
	f domain.Filter,
) ([]models.Consultant, error) {

	if f.IsVerified == nil {
		verified := true
		f.IsVerified = &verified
	}

	// Só a vitrine padrão (verificados, sem busca) passa pelo cache
	cacheable := *f.IsVerified &&
		f.Search == "" &&
		len(f.Specialties) == 0

	if cacheable {
		if feed, ok := uc.feedCache.GetFeed(ctx); ok {
			return feed, nil
		}
	}

	found, err := uc.consultants.Query(ctx, f)
	if err != nil {
		return nil, err
	}

	if found == nil {
		found = []models.Consultant{}
	}

	if cacheable {
		uc.feedCache.SetFeed(ctx, found)
	}

	return found, nil
}
