// Package tasks stores tasks. Every operation is scoped to the owning user;
// a record owned by someone else is reported as common.ErrorNotFound.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/edvora/internal/server/models"
)

type Repository interface {
	// ListForUser returns the user's tasks. Postgres orders them by deadline
	// (undated last); the memory backend keeps insertion order.
	ListForUser(ctx context.Context, userID string) ([]models.Task, error)
	Get(ctx context.Context, userID, id string) (*models.Task, error)
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	Update(ctx context.Context, userID, id string, patch models.TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, userID, id string) error
}
