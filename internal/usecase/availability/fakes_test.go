package availability

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	consultantDomain "github.com/BruksfildServices01/consult-scheduler/internal/domain/consultant"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

// ===============================
// Fakes em memória
// ===============================

type fakeSlotStore struct {
	mu    sync.Mutex
	slots map[string]models.Availability
}

func newFakeSlotStore() *fakeSlotStore {
	return &fakeSlotStore{slots: make(map[string]models.Availability)}
}

func (f *fakeSlotStore) Insert(ctx context.Context, slot *models.Availability) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if slot.ID == "" {
		slot.ID = uuid.NewString()
	}
	f.slots[slot.ID] = *slot
	return nil
}

func (f *fakeSlotStore) Update(ctx context.Context, slot *models.Availability) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.slots[slot.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.slots[slot.ID] = *slot
	return nil
}

func (f *fakeSlotStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.slots[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.slots, id)
	return nil
}

func (f *fakeSlotStore) GetByID(ctx context.Context, id string) (*models.Availability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	slot, ok := f.slots[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &slot, nil
}

func (f *fakeSlotStore) FindByConsultant(ctx context.Context, consultantID string) ([]models.Availability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Availability
	for _, slot := range f.slots {
		if slot.ConsultantID == consultantID {
			out = append(out, slot)
		}
	}
	return out, nil
}

func (f *fakeSlotStore) FindOverlapping(
	ctx context.Context,
	consultantID string,
	start, end time.Time,
	excludeID string,
) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, slot := range f.slots {
		if slot.ConsultantID != consultantID || !slot.IsAvailable {
			continue
		}
		if excludeID != "" && slot.ID == excludeID {
			continue
		}
		if slot.StartTime.Before(end) && start.Before(slot.EndTime) {
			count++
		}
	}
	return count, nil
}

func (f *fakeSlotStore) FindAvailableForDay(
	ctx context.Context,
	consultantID string,
	dayStart, dayEnd time.Time,
) ([]models.Availability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Availability
	for _, slot := range f.slots {
		if slot.ConsultantID != consultantID || !slot.IsAvailable {
			continue
		}
		if slot.StartTime.Before(dayStart) || !slot.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, slot)
	}
	// ordenação por início, como o store real
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].StartTime.Before(out[j-1].StartTime); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

type fakeConsultantStore struct {
	mu          sync.Mutex
	consultants map[string]models.Consultant
}

func newFakeConsultantStore(ids ...string) *fakeConsultantStore {
	f := &fakeConsultantStore{consultants: make(map[string]models.Consultant)}
	for _, id := range ids {
		f.consultants[id] = models.Consultant{ID: id, IsVerified: true}
	}
	return f
}

func (f *fakeConsultantStore) Insert(ctx context.Context, c *models.Consultant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	f.consultants[c.ID] = *c
	return nil
}

func (f *fakeConsultantStore) Update(ctx context.Context, c *models.Consultant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.consultants[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.consultants[c.ID] = *c
	return nil
}

func (f *fakeConsultantStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.consultants[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.consultants, id)
	return nil
}

func (f *fakeConsultantStore) GetByID(ctx context.Context, id string) (*models.Consultant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.consultants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (f *fakeConsultantStore) GetByUserID(ctx context.Context, userID string) (*models.Consultant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.consultants {
		if c.UserID == userID {
			found := c
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeConsultantStore) Query(ctx context.Context, filter consultantDomain.Filter) ([]models.Consultant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Consultant
	for _, c := range f.consultants {
		if filter.IsVerified != nil && c.IsVerified != *filter.IsVerified {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
