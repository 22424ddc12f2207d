package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/session"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

type SessionGormRepository struct {
	db *gorm.DB
}

func NewSessionGormRepository(db *gorm.DB) *SessionGormRepository {
	return &SessionGormRepository{db: db}
}

func (r *SessionGormRepository) Insert(
	ctx context.Context,
	s *models.Session,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SessionGormRepository) Update(
	ctx context.Context,
	s *models.Session,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SessionGormRepository) Delete(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Session{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SessionGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Session, error) {

	var s models.Session
	if err := r.db.WithContext(ctx).
		Preload("Consultant").
		Preload("Consultant.User").
		Preload("Client").
		Preload("Client.User").
		Where("id = ?", id).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionGormRepository) FindAll(
	ctx context.Context,
) ([]models.Session, error) {

	var sessions []models.Session
	if err := r.db.WithContext(ctx).
		Preload("Consultant.User").
		Preload("Client.User").
		Order("date ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionGormRepository) FindByConsultant(
	ctx context.Context,
	consultantID string,
) ([]models.Session, error) {

	var sessions []models.Session
	if err := r.db.WithContext(ctx).
		Preload("Client.User").
		Where("consultant_id = ?", consultantID).
		Order("date ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionGormRepository) FindByClient(
	ctx context.Context,
	clientID string,
) ([]models.Session, error) {

	var sessions []models.Session
	if err := r.db.WithContext(ctx).
		Preload("Consultant.User").
		Where("client_id = ?", clientID).
		Order("date ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// Compile-time check
var _ domain.Repository = (*SessionGormRepository)(nil)
