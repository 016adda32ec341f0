package tasks

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/edvora/internal/common"
	"github.com/dmitrijs2005/edvora/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps tasks in insertion order. It makes no durability
// promise; the mutex only protects the map from concurrent access.
type MemoryRepository struct {
	mu    sync.RWMutex
	tasks map[string]*models.Task
	order []string
	now   func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tasks: make(map[string]*models.Task), now: time.Now}
}

func clone(t *models.Task) models.Task {
	c := *t
	c.Tags = append([]string{}, t.Tags...)
	if t.Deadline != nil {
		d := *t.Deadline
		c.Deadline = &d
	}
	return c
}

func (r *MemoryRepository) ListForUser(ctx context.Context, userID string) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []models.Task{}
	for _, id := range r.order {
		if t := r.tasks[id]; t.UserID == userID {
			result = append(result, clone(t))
		}
	}
	return result, nil
}

// lookup must be called with mu held.
func (r *MemoryRepository) lookup(userID, id string) (*models.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return t, nil
}

func (r *MemoryRepository) Get(ctx context.Context, userID, id string) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, err := r.lookup(userID, id)
	if err != nil {
		return nil, err
	}
	c := clone(t)
	return &c, nil
}

func (r *MemoryRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	task.ID = uuid.NewString()
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.Tags == nil {
		task.Tags = []string{}
	}

	stored := clone(task)
	r.tasks[task.ID] = &stored
	r.order = append(r.order, task.ID)

	return task, nil
}

func (r *MemoryRepository) Update(ctx context.Context, userID, id string, patch models.TaskPatch) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := r.lookup(userID, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(t)
	t.UpdatedAt = r.now().UTC()

	c := clone(t)
	return &c, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.lookup(userID, id); err != nil {
		return err
	}
	delete(r.tasks, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}
