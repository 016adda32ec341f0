package sessions

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/edvora/internal/dbx"
	"github.com/dmitrijs2005/edvora/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, s *models.PomodoroSession) (*models.PomodoroSession, error) {
	query :=
		`INSERT INTO pomodoro_sessions (user_id, duration, task_name, completed_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, s.UserID, s.Duration, s.TaskName, s.CompletedAt).Scan(&s.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) ListForUser(ctx context.Context, userID string) ([]models.PomodoroSession, error) {
	query :=
		`SELECT id, user_id, duration, task_name, completed_at
		 FROM pomodoro_sessions
		 WHERE user_id = $1
		 ORDER BY completed_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.PomodoroSession{}
	for rows.Next() {
		var s models.PomodoroSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.Duration, &s.TaskName, &s.CompletedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
