// Package events stores calendar events, scoped to their owner the same way
// as tasks.
package events

import (
	"context"

	"github.com/dmitrijs2005/edvora/internal/server/models"
)

type Repository interface {
	// ListForUser returns the user's events. Postgres orders them by date
	// then start time; the memory backend keeps insertion order.
	ListForUser(ctx context.Context, userID string) ([]models.Event, error)
	// ListBetween returns events with from <= date < to.
	ListBetween(ctx context.Context, userID string, from, to models.Date) ([]models.Event, error)
	Get(ctx context.Context, userID, id string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	Update(ctx context.Context, userID, id string, patch models.EventPatch) (*models.Event, error)
	Delete(ctx context.Context, userID, id string) error
}
