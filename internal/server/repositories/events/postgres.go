package events

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/edvora/internal/common"
	"github.com/dmitrijs2005/edvora/internal/dbx"
	"github.com/dmitrijs2005/edvora/internal/server/models"
)

const eventColumns = `id, user_id, title, description, date, start_time, end_time,
		type, color, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (*models.Event, error) {
	e := &models.Event{}
	err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Description, &e.Date, &e.StartTime, &e.EndTime,
		&e.Type, &e.Color, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func mapError(err error) error {
	if dbx.IsNoRows(err) || dbx.IsInvalidText(err) {
		return common.ErrorNotFound
	}
	return fmt.Errorf("db error: %w", err)
}

func (r *PostgresRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]models.Event, error) {
	query, args, err := dbx.Builder.
		Select(eventColumns).
		From("events").
		Where(where).
		OrderBy("date ASC", "start_time ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) ListForUser(ctx context.Context, userID string) ([]models.Event, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

func (r *PostgresRepository) ListBetween(ctx context.Context, userID string, from, to models.Date) ([]models.Event, error) {
	return r.list(ctx, squirrel.And{
		squirrel.Eq{"user_id": userID},
		squirrel.GtOrEq{"date": from.Time},
		squirrel.Lt{"date": to.Time},
	})
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 AND user_id = $2`

	e, err := scanEvent(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		return nil, mapError(err)
	}
	return e, nil
}

func (r *PostgresRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	query :=
		`INSERT INTO events (user_id, title, description, date, start_time, end_time, type, color)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		event.UserID, event.Title, event.Description, event.Date.Time,
		event.StartTime, event.EndTime, string(event.Type), event.Color,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return event, nil
}

func (r *PostgresRepository) Update(ctx context.Context, userID, id string, patch models.EventPatch) (*models.Event, error) {
	values := map[string]any{"updated_at": squirrel.Expr("now()")}
	if patch.Title != nil {
		values["title"] = *patch.Title
	}
	if patch.Description != nil {
		values["description"] = *patch.Description
	}
	if patch.Date != nil {
		values["date"] = patch.Date.Time
	}
	if patch.StartTime != nil {
		values["start_time"] = *patch.StartTime
	}
	if patch.EndTime != nil {
		values["end_time"] = *patch.EndTime
	}
	if patch.Type != nil {
		values["type"] = string(*patch.Type)
	}
	if patch.Color != nil {
		values["color"] = *patch.Color
	}

	query, args, err := dbx.Builder.
		Update("events").
		SetMap(values).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + eventColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	e, err := scanEvent(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return e, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM events WHERE id = $1 AND user_id = $2`

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
