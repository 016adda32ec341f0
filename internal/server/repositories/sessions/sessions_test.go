package sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/edvora/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgres_CreateAndList(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)
	at := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+pomodoro_sessions.*RETURNING\s+id`).
		WithArgs("u-1", 25, "Focus Session", at).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("s-1"))
	mock.ExpectQuery(`(?s)FROM\s+pomodoro_sessions\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+completed_at\s+DESC`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "duration", "task_name", "completed_at"}).
			AddRow("s-1", "u-1", 25, "Focus Session", at))

	s, err := repo.Create(context.Background(), &models.PomodoroSession{UserID: "u-1", Duration: 25, TaskName: "Focus Session", CompletedAt: at})
	require.NoError(t, err)
	assert.Equal(t, "s-1", s.ID)

	list, err := repo.ListForUser(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 25, list[0].Duration)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ListError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("boom"))

	_, err = NewPostgresRepository(db).ListForUser(context.Background(), "u-1")
	assert.ErrorContains(t, err, "db error: boom")
}

func TestMemory_MostRecentFirst(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for _, name := range []string{"first", "second"} {
		_, err := repo.Create(ctx, &models.PomodoroSession{UserID: "u-1", Duration: 25, TaskName: name})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, &models.PomodoroSession{UserID: "u-2", Duration: 5})
	require.NoError(t, err)

	list, err := repo.ListForUser(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].TaskName)
	assert.NotEqual(t, list[0].ID, list[1].ID)
}
