package repomanager

import (
	"context"

	"github.com/dmitrijs2005/edvora/internal/server/repositories/events"
	"github.com/dmitrijs2005/edvora/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/edvora/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/edvora/internal/server/repositories/users"
)

// MemoryRepositoryManager owns the in-process demo store. Each instance is
// independent; nothing is shared through package state.
type MemoryRepositoryManager struct {
	users    *users.MemoryRepository
	tasks    *tasks.MemoryRepository
	events   *events.MemoryRepository
	sessions *sessions.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:    users.NewMemoryRepository(),
		tasks:    tasks.NewMemoryRepository(),
		events:   events.NewMemoryRepository(),
		sessions: sessions.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) Tasks() tasks.Repository {
	return m.tasks
}

func (m *MemoryRepositoryManager) Events() events.Repository {
	return m.events
}

func (m *MemoryRepositoryManager) Sessions() sessions.Repository {
	return m.sessions
}

func (m *MemoryRepositoryManager) Mode() Mode {
	return ModeMemory
}

func (m *MemoryRepositoryManager) Ping(ctx context.Context) error {
	return nil
}

func (m *MemoryRepositoryManager) Close() error {
	return nil
}
