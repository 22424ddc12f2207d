package session

import (
	"time"

	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition aplica uma mudança de status validada pelo grafo,
// carimbando CompletedAt/CancelledAt quando o estado é terminal.
func Transition(s *models.Session, next Status, now time.Time) error {
	if err := CanTransition(Status(s.Status), next); err != nil {
		return err
	}

	s.Status = string(next)

	switch next {
	case StatusCompleted:
		s.CompletedAt = &now
	case StatusCancelled:
		s.CancelledAt = &now
	}

	return nil
}
