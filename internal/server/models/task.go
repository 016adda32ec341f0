package models

import "time"

type TaskType string

const (
	TaskTypeAssignment TaskType = "assignment"
	TaskTypeProject    TaskType = "project"
	TaskTypeExam       TaskType = "exam"
	TaskTypeOther      TaskType = "other"
)

func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeAssignment, TaskTypeProject, TaskTypeExam, TaskTypeOther:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusOverdue    TaskStatus = "overdue"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusOverdue:
		return true
	}
	return false
}

// Task is an assignment-like item owned by exactly one user.
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Course      string     `json:"course"`
	Type        TaskType   `json:"type"`
	Priority    Priority   `json:"priority"`
	Deadline    *Date      `json:"deadline"`
	Status      TaskStatus `json:"status"`
	Completed   bool       `json:"completed"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskPatch is a partial update; nil fields are left untouched.
// ClearDeadline removes the deadline and wins over Deadline.
type TaskPatch struct {
	Title         *string
	Description   *string
	Course        *string
	Type          *TaskType
	Priority      *Priority
	Deadline      *Date
	ClearDeadline bool
	Status        *TaskStatus
	Completed     *bool
	Tags          *[]string
}

// Apply merges p into t. The caller bumps UpdatedAt.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Course != nil {
		t.Course = *p.Course
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Deadline != nil {
		d := *p.Deadline
		t.Deadline = &d
	}
	if p.ClearDeadline {
		t.Deadline = nil
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Tags != nil {
		t.Tags = append([]string{}, (*p.Tags)...)
	}
}
