package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/consultant"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

type ConsultantGormRepository struct {
	db *gorm.DB
}

func NewConsultantGormRepository(db *gorm.DB) *ConsultantGormRepository {
	return &ConsultantGormRepository{db: db}
}

// --------------------------------------------------
// CRUD
// --------------------------------------------------

func (r *ConsultantGormRepository) Insert(
	ctx context.Context,
	c *models.Consultant,
) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ConsultantGormRepository) Update(
	ctx context.Context,
	c *models.Consultant,
) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ConsultantGormRepository) Delete(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Consultant{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ConsultantGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Consultant, error) {

	var c models.Consultant
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ConsultantGormRepository) GetByUserID(
	ctx context.Context,
	userID string,
) (*models.Consultant, error) {

	var c models.Consultant
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// --------------------------------------------------
// Busca filtrada
// --------------------------------------------------

func (r *ConsultantGormRepository) Query(
	ctx context.Context,
	f domain.Filter,
) ([]models.Consultant, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Consultant{}).
		Preload("User").
		Joins("JOIN users ON users.id = consultants.user_id")

	if f.IsVerified != nil {
		q = q.Where("consultants.is_verified = ?", *f.IsVerified)
	}

	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where(
			"LOWER(users.full_name) LIKE ? OR LOWER(consultants.bio) LIKE ?",
			pattern, pattern,
		)
	}

	// Basta uma especialidade em comum (interseção não vazia).
	// Specialties ficam serializadas em JSON; o LIKE cobre o teste
	// sem depender de operadores de array.
	if len(f.Specialties) > 0 {
		group := r.db.Where(
			"consultants.specialties LIKE ?",
			"%"+f.Specialties[0]+"%",
		)
		for _, sp := range f.Specialties[1:] {
			group = group.Or("consultants.specialties LIKE ?", "%"+sp+"%")
		}
		q = q.Where(group)
	}

	var found []models.Consultant
	if err := q.Order("consultants.rating DESC").Find(&found).Error; err != nil {
		return nil, err
	}

	return found, nil
}

// Compile-time check
var _ domain.Repository = (*ConsultantGormRepository)(nil)
