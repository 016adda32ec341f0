package services

import (
	"context"
	"math"

	"github.com/dmitrijs2005/edvora/internal/server/models"
	"github.com/dmitrijs2005/edvora/internal/server/repositories/tasks"
)

// ComputeTaskStats derives the dashboard counters from a task list. A task
// counts as completed when either its status or its flag says so.
func ComputeTaskStats(list []models.Task) models.TaskStats {
	stats := models.TaskStats{TotalTasks: len(list)}
	for _, t := range list {
		if t.Status == models.TaskStatusCompleted || t.Completed {
			stats.CompletedTasks++
		}
		if t.Status == models.TaskStatusPending {
			stats.PendingTasks++
		}
	}
	if stats.TotalTasks > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100))
	}
	return stats
}

type StatsService struct {
	tasks tasks.Repository
}

func NewStatsService(repo tasks.Repository) *StatsService {
	return &StatsService{tasks: repo}
}

func (s *StatsService) ForUser(ctx context.Context, userID string) (models.TaskStats, error) {
	list, err := s.tasks.ListForUser(ctx, userID)
	if err != nil {
		return models.TaskStats{}, err
	}
	return ComputeTaskStats(list), nil
}
