package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/review"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) Insert(
	ctx context.Context,
	review *models.Review,
) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *ReviewGormRepository) Delete(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReviewGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Review, error) {

	var review models.Review
	if err := r.db.WithContext(ctx).
		Preload("Client.User").
		Where("id = ?", id).
		First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// FindBySession devolve nil sem erro quando a sessão ainda não foi
// avaliada — ausência aqui é resposta, não falha.
func (r *ReviewGormRepository) FindBySession(
	ctx context.Context,
	sessionID string,
) (*models.Review, error) {

	var review models.Review
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&review).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &review, nil
}

func (r *ReviewGormRepository) FindByConsultant(
	ctx context.Context,
	consultantID string,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Preload("Client.User").
		Where("consultant_id = ?", consultantID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) FindAll(
	ctx context.Context,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Preload("Client.User").
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Compile-time check
var _ domain.Repository = (*ReviewGormRepository)(nil)
