// Package sessions stores finished Pomodoro focus sessions.
package sessions

import (
	"context"

	"github.com/dmitrijs2005/edvora/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, session *models.PomodoroSession) (*models.PomodoroSession, error)
	// ListForUser returns the user's sessions, most recent first.
	ListForUser(ctx context.Context, userID string) ([]models.PomodoroSession, error)
}
