package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Consultant struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	UserID string `gorm:"size:36;uniqueIndex;not null" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	Specialties []string `gorm:"serializer:json" json:"specialties"`
	Bio         string   `gorm:"type:text" json:"bio"`
	Education   string   `gorm:"type:text" json:"education"`
	License     string   `gorm:"size:100" json:"license"`

	// Rating e ReviewCount são estado derivado: só o fold de avaliações
	// pode alterá-los.
	Rating      float64 `gorm:"default:0" json:"rating"`
	ReviewCount int     `gorm:"default:0" json:"review_count"`

	IsVerified bool `gorm:"default:false" json:"is_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Consultant) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
