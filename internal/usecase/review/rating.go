package review

import (
	"context"
	"math"

	consultantDomain "github.com/BruksfildServices01/consult-scheduler/internal/domain/consultant"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/locking"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

// ======================================================
// REPUTATION AGGREGATOR
// ======================================================

// RatingAggregator incorpora cada nova nota na média corrente do
// consultor. O par (rating, reviewCount) nunca é calculado a partir
// de leitura fora do lock do consultor — dois folds simultâneos com
// o mesmo estado velho perderiam uma avaliação.
type RatingAggregator struct {
	consultants consultantDomain.Repository
	locks       *locking.KeyedMutex
}

func NewRatingAggregator(
	consultants consultantDomain.Repository,
	locks *locking.KeyedMutex,
) *RatingAggregator {
	return &RatingAggregator{
		consultants: consultants,
		locks:       locks,
	}
}

// Fold aplica: nova = (antiga*n + nota) / (n+1).
// O arredondamento para uma casa decimal acontece só no valor
// armazenado, depois da atualização, para não acumular erro.
func (a *RatingAggregator) Fold(
	ctx context.Context,
	consultantID string,
	rating int,
) (*models.Consultant, error) {

	a.locks.Lock(consultantID)
	defer a.locks.Unlock(consultantID)

	return a.fold(ctx, consultantID, rating)
}

// fold assume que o lock do consultor já está em posse do chamador
func (a *RatingAggregator) fold(
	ctx context.Context,
	consultantID string,
	rating int,
) (*models.Consultant, error) {

	consultant, err := a.consultants.GetByID(ctx, consultantID)
	if err != nil {
		return nil, httperr.AsNotFound(err, "consultant_not_found")
	}

	newCount := consultant.ReviewCount + 1
	total := consultant.Rating*float64(consultant.ReviewCount) + float64(rating)

	consultant.Rating = math.Round(total/float64(newCount)*10) / 10
	consultant.ReviewCount = newCount

	if err := a.consultants.Update(ctx, consultant); err != nil {
		return nil, err
	}

	return consultant, nil
}
