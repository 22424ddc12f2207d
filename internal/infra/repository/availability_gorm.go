package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

type AvailabilityGormRepository struct {
	db *gorm.DB
}

func NewAvailabilityGormRepository(db *gorm.DB) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{db: db}
}

// --------------------------------------------------
// CRUD
// --------------------------------------------------

func (r *AvailabilityGormRepository) Insert(
	ctx context.Context,
	slot *models.Availability,
) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *AvailabilityGormRepository) Update(
	ctx context.Context,
	slot *models.Availability,
) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *AvailabilityGormRepository) Delete(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Availability{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AvailabilityGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Availability, error) {

	var slot models.Availability
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// --------------------------------------------------
// Consultas
// --------------------------------------------------

func (r *AvailabilityGormRepository) FindByConsultant(
	ctx context.Context,
	consultantID string,
) ([]models.Availability, error) {

	var slots []models.Availability
	if err := r.db.WithContext(ctx).
		Where("consultant_id = ?", consultantID).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// FindOverlapping conta janelas ativas que cruzam [start, end) com
// lock de linha, pro check-then-insert não correr contra outra
// transação do mesmo consultor.
func (r *AvailabilityGormRepository) FindOverlapping(
	ctx context.Context,
	consultantID string,
	start time.Time,
	end time.Time,
	excludeID string,
) (int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Availability{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"consultant_id = ? AND is_available = true AND start_time < ? AND end_time > ?",
			consultantID,
			end,
			start,
		)

	if excludeID != "" {
		q = q.Where("id != ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *AvailabilityGormRepository) FindAvailableForDay(
	ctx context.Context,
	consultantID string,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Availability, error) {

	var slots []models.Availability
	if err := r.db.WithContext(ctx).
		Where(
			"consultant_id = ? AND is_available = true AND start_time >= ? AND start_time < ?",
			consultantID, dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

// Compile-time check
var _ domain.Repository = (*AvailabilityGormRepository)(nil)
