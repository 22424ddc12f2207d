package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	consultantDomain "github.com/BruksfildServices01/consult-scheduler/internal/domain/consultant"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

// ===============================
// Fakes em memória
// ===============================

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]models.Session)}
}

func (f *fakeSessionStore) Insert(ctx context.Context, s *models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	f.sessions[s.ID] = *s
	return nil
}

func (f *fakeSessionStore) Update(ctx context.Context, s *models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sessions[s.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.sessions[s.ID] = *s
	return nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sessions[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessionStore) GetByID(ctx context.Context, id string) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (f *fakeSessionStore) FindAll(ctx context.Context) ([]models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Session
	for _, s := range f.sessions {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSessionStore) FindByConsultant(ctx context.Context, consultantID string) ([]models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Session
	for _, s := range f.sessions {
		if s.ConsultantID == consultantID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionStore) FindByClient(ctx context.Context, clientID string) ([]models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Session
	for _, s := range f.sessions {
		if s.ClientID == clientID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeConsultantStore struct {
	consultants map[string]models.Consultant
}

func newFakeConsultantStore(consultants ...models.Consultant) *fakeConsultantStore {
	f := &fakeConsultantStore{consultants: make(map[string]models.Consultant)}
	for _, c := range consultants {
		f.consultants[c.ID] = c
	}
	return f
}

func (f *fakeConsultantStore) Insert(ctx context.Context, c *models.Consultant) error {
	f.consultants[c.ID] = *c
	return nil
}

func (f *fakeConsultantStore) Update(ctx context.Context, c *models.Consultant) error {
	f.consultants[c.ID] = *c
	return nil
}

func (f *fakeConsultantStore) Delete(ctx context.Context, id string) error {
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

func (f *fakeConsultantStore) Query(ctx context.Context, filter consultantDomain.Filter) ([]models.Consultant, error) {
	var out []models.Consultant
	for _, c := range f.consultants {
		out = append(out, c)
	}
	return out, nil
}

type fakeClientStore struct {
	clients map[string]models.Client
}

func newFakeClientStore(ids ...string) *fakeClientStore {
	f := &fakeClientStore{clients: make(map[string]models.Client)}
	for _, id := range ids {
		f.clients[id] = models.Client{ID: id}
	}
	return f
}

func (f *fakeClientStore) Insert(ctx context.Context, c *models.Client) error {
	f.clients[c.ID] = *c
	return nil
}

func (f *fakeClientStore) Delete(ctx context.Context, id string) error {
	delete(f.clients, id)
	return nil
}

func (f *fakeClientStore) GetByID(ctx context.Context, id string) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (f *fakeClientStore) GetByUserID(ctx context.Context, userID string) (*models.Client, error) {
	for _, c := range f.clients {
		if c.UserID == userID {
			found := c
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeClientStore) FindAll(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, nil
}
