package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Janela de disponibilidade publicada pelo consultor.
// Intervalo semiaberto: [StartTime, EndTime).
type Availability struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ConsultantID string     `gorm:"size:36;index;not null" json:"consultant_id"`
	Consultant   Consultant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	// Janelas com IsAvailable=false representam bloqueios e ficam fora
	// da regra de não-sobreposição.
	IsAvailable bool `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Availability) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
