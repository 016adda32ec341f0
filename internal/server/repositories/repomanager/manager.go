// Package repomanager selects the storage backend once at start and vends the
// per-entity repositories bound to it.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/edvora/internal/server/repositories/events"
	"github.com/dmitrijs2005/edvora/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/edvora/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/edvora/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Tasks() tasks.Repository
	Events() events.Repository
	Sessions() sessions.Repository
	Mode() Mode
	Ping(ctx context.Context) error
	Close() error
}

// Mode identifies the active backend.
type Mode int

const (
	ModeMemory Mode = iota
	ModePostgres
)

// Database is the label reported by the health endpoint.
func (m Mode) Database() string {
	if m == ModePostgres {
		return "PostgreSQL"
	}
	return "In-Memory (Demo Mode)"
}

// Description is the label reported by the welcome document.
func (m Mode) Description() string {
	if m == ModePostgres {
		return "Production (PostgreSQL)"
	}
	return "Development (In-Memory)"
}

func (m Mode) Note() string {
	if m == ModePostgres {
		return "Data persists in the database"
	}
	return "Data lost on server restart"
}
