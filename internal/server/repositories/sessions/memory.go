package sessions

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/edvora/internal/server/models"
	"github.com/google/uuid"
)

type MemoryRepository struct {
	mu       sync.RWMutex
	sessions []models.PomodoroSession
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, s *models.PomodoroSession) (*models.PomodoroSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = uuid.NewString()
	r.sessions = append(r.sessions, *s)
	return s, nil
}

func (r *MemoryRepository) ListForUser(ctx context.Context, userID string) ([]models.PomodoroSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []models.PomodoroSession{}
	for i := len(r.sessions) - 1; i >= 0; i-- {
		if r.sessions[i].UserID == userID {
			result = append(result, r.sessions[i])
		}
	}
	return result, nil
}
