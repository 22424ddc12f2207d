package consultant

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/consultant"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

// ===============================
// Fakes em memória
// ===============================

type fakeConsultantStore struct {
	consultants map[string]models.Consultant

	// filtro da última Query, para inspecionar defaults
	lastFilter *domain.Filter
}

func newFakeConsultantStore(consultants ...models.Consultant) *fakeConsultantStore {
	f := &fakeConsultantStore{consultants: make(map[string]models.Consultant)}
	for _, c := range consultants {
		f.consultants[c.ID] = c
	}
	return f
}

func (f *fakeConsultantStore) Insert(ctx context.Context, c *models.Consultant) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	f.consultants[c.ID] = *c
	return nil
}

func (f *fakeConsultantStore) Update(ctx context.Context, c *models.Consultant) error {
	if _, ok := f.consultants[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.consultants[c.ID] = *c
	return nil
}

func (f *fakeConsultantStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.consultants[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.consultants, id)
	return nil
}

func (f *fakeConsultantStore) GetByID(ctx context.Context, id string) (*models.Consultant, error) {
	c, ok := f.consultants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (f *fakeConsultantStore) GetByUserID(ctx context.Context, userID string) (*models.Consultant, error) {
	for _, c := range f.consultants {
		if c.UserID == userID {
			found := c
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeConsultantStore) Query(ctx context.Context, filter domain.Filter) ([]models.Consultant, error) {
	f.lastFilter = &filter

	var out []models.Consultant
	for _, c := range f.consultants {
		if filter.IsVerified != nil && c.IsVerified != *filter.IsVerified {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

type fakeUserStore struct {
	users map[string]models.User
}

func newFakeUserStore(users ...models.User) *fakeUserStore {
	f := &fakeUserStore{users: make(map[string]models.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserStore) Insert(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserStore) Update(ctx context.Context, u *models.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
