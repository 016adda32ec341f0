package dbx

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestUniqueViolation(t *testing.T) {
	err := fmt.Errorf("db error: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"})

	name, ok := UniqueViolation(err)
	assert.True(t, ok)
	assert.Equal(t, "users_email_key", name)

	_, ok = UniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
	assert.False(t, ok)

	_, ok = UniqueViolation(errors.New("plain"))
	assert.False(t, ok)
}

func TestIsInvalidText(t *testing.T) {
	assert.True(t, IsInvalidText(&pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation}))
	assert.False(t, IsInvalidText(sql.ErrConnDone))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(fmt.Errorf("wrap: %w", sql.ErrNoRows)))
	assert.False(t, IsNoRows(errors.New("other")))
}

func TestBuilder_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Builder.Update("tasks").Set("title", "HW1").Where("id = ?", "t-1").ToSql()
	assert.NoError(t, err)
	assert.Equal(t, "UPDATE tasks SET title = $1 WHERE id = $2", query)
	assert.Equal(t, []any{"HW1", "t-1"}, args)
}
