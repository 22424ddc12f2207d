package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Session struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ConsultantID string     `gorm:"size:36;index;not null" json:"consultant_id"`
	Consultant   Consultant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"consultant"`

	ClientID string `gorm:"size:36;index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	Date time.Time `gorm:"not null" json:"date"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes string `gorm:"type:text" json:"notes"`

	// Canal externo de comunicação registrado pelo fluxo de mensagens
	MessengerID   string `gorm:"size:100" json:"messenger_id"`
	MessengerType string `gorm:"size:20" json:"messenger_type"`

	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
