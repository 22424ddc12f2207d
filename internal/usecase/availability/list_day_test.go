package availability

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
)

func TestListAvailableForDay(t *testing.T) {
	ctx := context.Background()
	slots := newFakeSlotStore()
	consultants := newFakeConsultantStore("cons-1")
	uc := NewListAvailableForDay(slots, consultants)

	seedSlot(t, slots, "cons-1", 14, 60)
	seedSlot(t, slots, "cons-1", 9, 60)
	other := seedSlot(t, slots, "cons-1", 9, 30)
	other.StartTime = other.StartTime.AddDate(0, 0, 1)
	other.EndTime = other.EndTime.AddDate(0, 0, 1)
	if err := slots.Update(ctx, other); err != nil {
		t.Fatalf("move slot to next day: %v", err)
	}

	day := time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)
	found, err := uc.Execute(ctx, "cons-1", day)
	if err != nil {
		t.Fatalf("list day: %v", err)
	}

	if len(found) != 2 {
		t.Fatalf("expected 2 slots for the day, got %d", len(found))
	}
	if !found[0].StartTime.Before(found[1].StartTime) {
		t.Fatal("expected slots ordered by start time")
	}
}

func TestListAvailableForDayEmptyIsNotError(t *testing.T) {
	uc := NewListAvailableForDay(newFakeSlotStore(), newFakeConsultantStore("cons-1"))

	day := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	found, err := uc.Execute(context.Background(), "cons-1", day)
	if err != nil {
		t.Fatalf("empty day: %v", err)
	}
	if found == nil || len(found) != 0 {
		t.Fatalf("expected empty slice, got %v", found)
	}
}

func TestListAvailableForDayConsultantNotFound(t *testing.T) {
	uc := NewListAvailableForDay(newFakeSlotStore(), newFakeConsultantStore())

	_, err := uc.Execute(context.Background(), "ghost", time.Now())
	if !httperr.IsBusiness(err, "consultant_not_found") {
		t.Fatalf("expected consultant_not_found, got %v", err)
	}
}
