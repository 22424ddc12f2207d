package session

import (
	"context"
	"testing"

	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/session"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

func seedSession(t *testing.T, store *fakeSessionStore, status domain.Status) *models.Session {
	t.Helper()

	s := &models.Session{
		ConsultantID: "cons-1",
		ClientID:     "cli-1",
		Date:         sessionDate,
		Status:       string(status),
	}
	if err := store.Insert(context.Background(), s); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return s
}

func TestUpdateSessionStatusFullLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newFakeSessionStore()
	uc := NewUpdateSessionStatus(store, nil)

	s := seedSession(t, store, domain.StatusPending)

	confirmed, err := uc.Execute(ctx, s.ID, domain.StatusConfirmed)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if domain.Status(confirmed.Status) != domain.StatusConfirmed {
		t.Fatalf("expected confirmed, got %s", confirmed.Status)
	}

	completed, err := uc.Execute(ctx, s.ID, domain.StatusCompleted)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if completed.CompletedAt == nil {
		t.Fatal("expected CompletedAt to be stamped")
	}
}

func TestUpdateSessionStatusRejectsSkippingConfirmation(t *testing.T) {
	store := newFakeSessionStore()
	uc := NewUpdateSessionStatus(store, nil)

	s := seedSession(t, store, domain.StatusPending)

	_, err := uc.Execute(context.Background(), s.ID, domain.StatusCompleted)
	if !httperr.IsBusiness(err, "invalid_status_transition") {
		t.Fatalf("expected invalid_status_transition, got %v", err)
	}

	// estado persistido permanece pending
	stored, err := store.GetByID(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("reload session: %v", err)
	}
	if domain.Status(stored.Status) != domain.StatusPending {
		t.Fatalf("expected stored status pending, got %s", stored.Status)
	}
}

func TestUpdateSessionStatusTerminalStatesAreFinal(t *testing.T) {
	ctx := context.Background()
	store := newFakeSessionStore()
	uc := NewUpdateSessionStatus(store, nil)

	for _, terminal := range []domain.Status{domain.StatusCompleted, domain.StatusCancelled} {
		s := seedSession(t, store, terminal)

		for _, next := range []domain.Status{
			domain.StatusPending,
			domain.StatusConfirmed,
			domain.StatusCompleted,
			domain.StatusCancelled,
		} {
			_, err := uc.Execute(ctx, s.ID, next)
			if !httperr.IsBusiness(err, "invalid_status_transition") {
				t.Fatalf("%s -> %s: expected invalid_status_transition, got %v", terminal, next, err)
			}
		}
	}
}

func TestUpdateSessionStatusUnknownStatus(t *testing.T) {
	store := newFakeSessionStore()
	uc := NewUpdateSessionStatus(store, nil)

	s := seedSession(t, store, domain.StatusPending)

	_, err := uc.Execute(context.Background(), s.ID, domain.Status("paused"))
	if !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
}

func TestUpdateSessionStatusNotFound(t *testing.T) {
	uc := NewUpdateSessionStatus(newFakeSessionStore(), nil)

	_, err := uc.Execute(context.Background(), "ghost", domain.StatusConfirmed)
	if !httperr.IsBusiness(err, "session_not_found") {
		t.Fatalf("expected session_not_found, got %v", err)
	}
}
