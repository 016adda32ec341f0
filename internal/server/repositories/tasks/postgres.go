package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/edvora/internal/common"
	"github.com/dmitrijs2005/edvora/internal/dbx"
	"github.com/dmitrijs2005/edvora/internal/server/models"
)

const taskColumns = `id, user_id, title, description, course, type, priority, deadline,
		status, completed, tags, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*models.Task, error) {
	t := &models.Task{}
	var tags []byte
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Course, &t.Type, &t.Priority,
		&t.Deadline, &t.Status, &t.Completed, &tags, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &t.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return t, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	return string(b), err
}

func deadlineArg(d *models.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}

func mapError(err error) error {
	if dbx.IsNoRows(err) || dbx.IsInvalidText(err) {
		return common.ErrorNotFound
	}
	return fmt.Errorf("db error: %w", err)
}

func (r *PostgresRepository) ListForUser(ctx context.Context, userID string) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		 WHERE user_id = $1
		 ORDER BY deadline ASC NULLS LAST, created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		if dbx.IsInvalidText(err) {
			return []models.Task{}, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND user_id = $2`

	t, err := scanTask(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		return nil, mapError(err)
	}
	return t, nil
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	query :=
		`INSERT INTO tasks (user_id, title, description, course, type, priority, deadline, status, completed, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::jsonb)
		 RETURNING id, created_at, updated_at
		 `

	tags, err := encodeTags(task.Tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}

	err = r.db.QueryRowContext(ctx, query,
		task.UserID, task.Title, task.Description, task.Course, string(task.Type), string(task.Priority),
		deadlineArg(task.Deadline), string(task.Status), task.Completed, tags,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	if task.Tags == nil {
		task.Tags = []string{}
	}
	return task, nil
}

func (r *PostgresRepository) Update(ctx context.Context, userID, id string, patch models.TaskPatch) (*models.Task, error) {
	values := map[string]any{"updated_at": squirrel.Expr("now()")}
	if patch.Title != nil {
		values["title"] = *patch.Title
	}
	if patch.Description != nil {
		values["description"] = *patch.Description
	}
	if patch.Course != nil {
		values["course"] = *patch.Course
	}
	if patch.Type != nil {
		values["type"] = string(*patch.Type)
	}
	if patch.Priority != nil {
		values["priority"] = string(*patch.Priority)
	}
	if patch.Deadline != nil {
		values["deadline"] = patch.Deadline.Time
	}
	if patch.ClearDeadline {
		values["deadline"] = nil
	}
	if patch.Status != nil {
		values["status"] = string(*patch.Status)
	}
	if patch.Completed != nil {
		values["completed"] = *patch.Completed
	}
	if patch.Tags != nil {
		tags, err := encodeTags(*patch.Tags)
		if err != nil {
			return nil, fmt.Errorf("encode tags: %w", err)
		}
		values["tags"] = squirrel.Expr("?::jsonb", tags)
	}

	query, args, err := dbx.Builder.
		Update("tasks").
		SetMap(values).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + taskColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return t, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
