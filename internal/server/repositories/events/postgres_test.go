package events

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/edvora/internal/common"
	"github.com/dmitrijs2005/edvora/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventCols = []string{"id", "user_id", "title", "description", "date", "start_time", "end_time",
	"type", "color", "created_at", "updated_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewPostgresRepository(db), mock
}

func lectureRow(rows *sqlmock.Rows, id string, day time.Time) *sqlmock.Rows {
	ts := time.Now().UTC()
	return rows.AddRow(id, "u-1", "Lecture", "", day, "09:00", "10:30", "class", "#667eea", ts, ts)
}

func TestListForUser(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	day := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+events\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+date\s+ASC,\s*start_time\s+ASC`).
		WithArgs("u-1").
		WillReturnRows(lectureRow(sqlmock.NewRows(eventCols), "e-1", day))

	got, err := repo.ListForUser(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2025-04-02", got[0].Date.String())
	assert.Equal(t, models.EventTypeClass, got[0].Type)
}

func TestListBetween(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	from := models.NewDate(2025, time.April, 1)
	to := models.NewDate(2025, time.May, 1)

	mock.ExpectQuery(`(?s)FROM\s+events\s+WHERE\s+\(user_id\s*=\s*\$1\s+AND\s+date\s*>=\s*\$2\s+AND\s+date\s*<\s*\$3\)`).
		WithArgs("u-1", from.Time, to.Time).
		WillReturnRows(sqlmock.NewRows(eventCols))

	got, err := repo.ListBetween(context.Background(), "u-1", from, to)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	ts := time.Now().UTC()
	day := models.NewDate(2025, time.April, 2)

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+events`).
		WithArgs("u-1", "Lecture", "", day.Time, "09:00", "", "class", "#667eea").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("e-1", ts, ts))

	got, err := repo.Create(context.Background(), &models.Event{
		UserID: "u-1", Title: "Lecture", Date: day, StartTime: "09:00", Type: models.EventTypeClass, Color: "#667eea",
	})
	require.NoError(t, err)
	assert.Equal(t, "e-1", got.ID)
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	color := "#ff0000"

	mock.ExpectQuery(`(?s)^UPDATE\s+events\s+SET\s+color\s*=\s*\$1,\s*updated_at\s*=\s*now\(\)\s+WHERE\s+id\s*=\s*\$2\s+AND\s+user_id\s*=\s*\$3`).
		WithArgs("#ff0000", "e-1", "u-1").
		WillReturnRows(lectureRow(sqlmock.NewRows(eventCols), "e-1", time.Now()))
	mock.ExpectQuery(`^UPDATE\s+events`).
		WithArgs("#ff0000", "e-1", "u-2").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), "u-1", "e-1", models.EventPatch{Color: &color})
	require.NoError(t, err)

	_, err = repo.Update(context.Background(), "u-2", "e-1", models.EventPatch{Color: &color})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`^DELETE\s+FROM\s+events`).WithArgs("e-1", "u-1").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "u-1", "e-1"), common.ErrorNotFound)
}
