package services

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/edvora/internal/common"
	"github.com/dmitrijs2005/edvora/internal/server/models"
	"github.com/dmitrijs2005/edvora/internal/server/repositories/sessions"
)

const (
	defaultSessionMinutes = 25
	maxSessionMinutes     = 240
	defaultSessionName    = "Focus Session"
)

type SessionInput struct {
	Duration    *int
	TaskName    string
	CompletedAt *time.Time
}

// PomodoroService records finished focus sessions. The countdown itself runs
// in the client.
type PomodoroService struct {
	sessions sessions.Repository
	now      func() time.Time
}

func NewPomodoroService(repo sessions.Repository) *PomodoroService {
	return &PomodoroService{sessions: repo, now: time.Now}
}

func (s *PomodoroService) Record(ctx context.Context, userID string, in SessionInput) (*models.PomodoroSession, error) {
	duration := defaultSessionMinutes
	if in.Duration != nil {
		duration = *in.Duration
	}
	if duration < 1 || duration > maxSessionMinutes {
		return nil, common.NewValidationError("Duration must be between 1 and %d minutes", maxSessionMinutes)
	}

	name := strings.TrimSpace(in.TaskName)
	if name == "" {
		name = defaultSessionName
	}

	completedAt := s.now().UTC()
	if in.CompletedAt != nil {
		completedAt = in.CompletedAt.UTC()
	}

	return s.sessions.Create(ctx, &models.PomodoroSession{
		UserID:      userID,
		Duration:    duration,
		TaskName:    name,
		CompletedAt: completedAt,
	})
}

func (s *PomodoroService) List(ctx context.Context, userID string) ([]models.PomodoroSession, error) {
	return s.sessions.ListForUser(ctx, userID)
}

// Stats counts all sessions and those completed on the current UTC day.
func (s *PomodoroService) Stats(ctx context.Context, userID string) (*models.PomodoroStats, error) {
	list, err := s.sessions.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	stats := &models.PomodoroStats{}
	for _, session := range list {
		stats.TotalSessions++
		stats.TotalMinutes += session.Duration
		if !session.CompletedAt.Before(dayStart) && session.CompletedAt.Before(dayEnd) {
			stats.TodaySessions++
			stats.TodayMinutes += session.Duration
		}
	}
	return stats, nil
}
