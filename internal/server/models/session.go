package models

import "time"

// PomodoroSession records one finished focus interval.
type PomodoroSession struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Duration    int       `json:"duration"`
	TaskName    string    `json:"taskName"`
	CompletedAt time.Time `json:"completedAt"`
}

// PomodoroStats summarises a user's sessions.
type PomodoroStats struct {
	TotalSessions int `json:"totalSessions"`
	TotalMinutes  int `json:"totalMinutes"`
	TodaySessions int `json:"todaySessions"`
	TodayMinutes  int `json:"todayMinutes"`
}

// TaskStats is derived on demand from a user's tasks and never stored.
type TaskStats struct {
	TotalTasks     int `json:"totalTasks"`
	CompletedTasks int `json:"completedTasks"`
	PendingTasks   int `json:"pendingTasks"`
	CompletionRate int `json:"completionRate"`
}
