package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/edvora/internal/server/models"
	"github.com/dmitrijs2005/edvora/internal/server/repositories/tasks"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestComputeTaskStats(t *testing.T) {
	tests := []struct {
		name string
		in   []models.Task
		want models.TaskStats
	}{
		{"empty", nil, models.TaskStats{}},
		{
			"one completed",
			[]models.Task{{Status: models.TaskStatusCompleted, Completed: true}},
			models.TaskStats{TotalTasks: 1, CompletedTasks: 1, CompletionRate: 100},
		},
		{
			"flag without status counts",
			[]models.Task{
				{Status: models.TaskStatusInProgress, Completed: true},
				{Status: models.TaskStatusPending},
				{Status: models.TaskStatusOverdue},
			},
			models.TaskStats{TotalTasks: 3, CompletedTasks: 1, PendingTasks: 1, CompletionRate: 33},
		},
		{
			"rounds half up",
			[]models.Task{
				{Status: models.TaskStatusCompleted},
				{Status: models.TaskStatusPending},
				{Status: models.TaskStatusCompleted},
				{Status: models.TaskStatusCompleted},
				{Status: models.TaskStatusPending},
				{Status: models.TaskStatusPending},
				{Status: models.TaskStatusPending},
				{Status: models.TaskStatusPending},
			},
			models.TaskStats{TotalTasks: 8, CompletedTasks: 3, PendingTasks: 5, CompletionRate: 38},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ComputeTaskStats(tt.in)); diff != "" {
				t.Fatalf("stats mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStatsService_ForUser(t *testing.T) {
	repo := tasks.NewMemoryRepository()
	ctx := context.Background()
	_, err := repo.Create(ctx, &models.Task{UserID: "u-1", Title: "a", Status: models.TaskStatusCompleted, Completed: true})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.Task{UserID: "u-2", Title: "b", Status: models.TaskStatusPending})
	require.NoError(t, err)

	got, err := NewStatsService(repo).ForUser(ctx, "u-1")
	require.NoError(t, err)
	if diff := cmp.Diff(models.TaskStats{TotalTasks: 1, CompletedTasks: 1, CompletionRate: 100}, got); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
}
