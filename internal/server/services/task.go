package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/edvora/internal/common"
	"github.com/dmitrijs2005/edvora/internal/server/models"
	"github.com/dmitrijs2005/edvora/internal/server/repositories/tasks"
)

// TaskInput is a create or update request. Nil fields are "not supplied".
type TaskInput struct {
	Title       *string
	Description *string
	Course      *string
	Type        *string
	Priority    *string
	Deadline    *models.Date
	// ClearDeadline is set when the client sent an explicit null or "".
	ClearDeadline bool
	Status        *string
	Completed     *bool
	Tags          *[]string
}

// TaskService validates and defaults tasks. Status is authoritative: the
// completed flag is always derived from it on write.
type TaskService struct {
	tasks tasks.Repository
}

func NewTaskService(repo tasks.Repository) *TaskService {
	return &TaskService{tasks: repo}
}

func (s *TaskService) List(ctx context.Context, userID string) ([]models.Task, error) {
	return s.tasks.ListForUser(ctx, userID)
}

func (s *TaskService) Create(ctx context.Context, userID string, in TaskInput) (*models.Task, error) {
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return nil, common.NewValidationError("Title is required")
	}

	patch, err := in.toPatch()
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		UserID:   userID,
		Type:     models.TaskTypeAssignment,
		Priority: models.PriorityMedium,
		Status:   models.TaskStatusPending,
		Tags:     []string{},
	}
	patch.Apply(task)
	task.Completed = task.Status == models.TaskStatusCompleted

	return s.tasks.Create(ctx, task)
}

func (s *TaskService) Update(ctx context.Context, userID, id string, in TaskInput) (*models.Task, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, common.NewValidationError("Title cannot be empty")
	}

	patch, err := in.toPatch()
	if err != nil {
		return nil, err
	}
	return s.tasks.Update(ctx, userID, id, patch)
}

func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	return s.tasks.Delete(ctx, userID, id)
}

// toPatch validates enums and reconciles status with the completed flag.
func (in TaskInput) toPatch() (models.TaskPatch, error) {
	p := models.TaskPatch{
		Description:   in.Description,
		Course:        in.Course,
		Deadline:      in.Deadline,
		ClearDeadline: in.ClearDeadline,
		Tags:          in.Tags,
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		p.Title = &title
	}
	if in.Type != nil {
		t := models.TaskType(*in.Type)
		if !t.Valid() {
			return p, common.NewValidationError("Invalid task type: %s", *in.Type)
		}
		p.Type = &t
	}
	if in.Priority != nil {
		pr := models.Priority(*in.Priority)
		if !pr.Valid() {
			return p, common.NewValidationError("Invalid priority: %s", *in.Priority)
		}
		p.Priority = &pr
	}

	switch {
	case in.Status != nil:
		st := models.TaskStatus(*in.Status)
		if !st.Valid() {
			return p, common.NewValidationError("Invalid status: %s", *in.Status)
		}
		done := st == models.TaskStatusCompleted
		p.Status = &st
		p.Completed = &done
	case in.Completed != nil:
		st := models.TaskStatusPending
		if *in.Completed {
			st = models.TaskStatusCompleted
		}
		done := *in.Completed
		p.Status = &st
		p.Completed = &done
	}

	return p, nil
}
