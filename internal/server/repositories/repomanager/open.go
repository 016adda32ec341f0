package repomanager

import (
	"context"

	"github.com/dmitrijs2005/edvora/internal/logging"
)

// Open returns the Postgres manager when dsn is set and reachable, and the
// memory manager otherwise. A failed connection is logged, not returned: the
// server still starts in demo mode.
func Open(ctx context.Context, dsn string, logger logging.Logger) RepositoryManager {
	if dsn == "" {
		logger.Warn(ctx, "no database configured, using in-memory storage",
			"database", ModeMemory.Database())
		return NewMemoryRepositoryManager()
	}

	m, err := NewPostgresRepositoryManager(ctx, dsn)
	if err != nil {
		logger.Error(ctx, "database unavailable, falling back to in-memory storage",
			"error", err, "database", ModeMemory.Database())
		return NewMemoryRepositoryManager()
	}

	logger.Info(ctx, "database connected", "database", ModePostgres.Database())
	return m
}
