package events

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/edvora/internal/common"
	"github.com/dmitrijs2005/edvora/internal/server/models"
	"github.com/google/uuid"
)

type MemoryRepository struct {
	mu     sync.RWMutex
	events map[string]*models.Event
	order  []string
	now    func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{events: make(map[string]*models.Event), now: time.Now}
}

func (r *MemoryRepository) filter(keep func(*models.Event) bool) []models.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []models.Event{}
	for _, id := range r.order {
		if e := r.events[id]; keep(e) {
			result = append(result, *e)
		}
	}
	return result
}

func (r *MemoryRepository) ListForUser(ctx context.Context, userID string) ([]models.Event, error) {
	return r.filter(func(e *models.Event) bool { return e.UserID == userID }), nil
}

func (r *MemoryRepository) ListBetween(ctx context.Context, userID string, from, to models.Date) ([]models.Event, error) {
	return r.filter(func(e *models.Event) bool {
		return e.UserID == userID && !e.Date.Before(from.Time) && e.Date.Before(to.Time)
	}), nil
}

// lookup must be called with mu held.
func (r *MemoryRepository) lookup(userID, id string) (*models.Event, error) {
	e, ok := r.events[id]
	if !ok || e.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return e, nil
}

func (r *MemoryRepository) Get(ctx context.Context, userID, id string) (*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, err := r.lookup(userID, id)
	if err != nil {
		return nil, err
	}
	c := *e
	return &c, nil
}

func (r *MemoryRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	event.ID = uuid.NewString()
	event.CreatedAt = now
	event.UpdatedAt = now

	stored := *event
	r.events[event.ID] = &stored
	r.order = append(r.order, event.ID)

	return event, nil
}

func (r *MemoryRepository) Update(ctx context.Context, userID, id string, patch models.EventPatch) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.lookup(userID, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(e)
	e.UpdatedAt = r.now().UTC()

	c := *e
	return &c, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.lookup(userID, id); err != nil {
		return err
	}
	delete(r.events, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}
