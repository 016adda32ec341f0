package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/edvora/internal/common"
	"github.com/dmitrijs2005/edvora/internal/dbx"
	"github.com/dmitrijs2005/edvora/internal/server/models"
)

const userColumns = `id, username, email, student_id, salt, master_key_verifier,
		name, department, bio, phone, avatar, role, created_at, updated_at`

// constraintFields maps unique index names from the migrations to API field
// names.
var constraintFields = map[string]string{
	"users_username_key":   "username",
	"users_email_key":      "email",
	"users_student_id_key": "studentId",
}

type PostgresRepository struct {
	db dbx.DB
}

func NewPostgresRepository(db dbx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.StudentID, &u.Salt, &u.Verifier,
		&u.Name, &u.Department, &u.Bio, &u.Phone, &u.Avatar, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// findConflict reports the first field of the candidate that is already taken
// by a user other than exceptID.
func findConflict(ctx context.Context, db dbx.DBTX, username, email string, studentID *string, exceptID string) (string, error) {
	query :=
		`SELECT username = $1, email = $2, COALESCE(student_id = $3, FALSE)
		 FROM users
		 WHERE (username = $1 OR email = $2 OR student_id = $3) AND id::text <> $4
		 `

	rows, err := db.QueryContext(ctx, query, username, email, studentID, exceptID)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	var dupUsername, dupEmail, dupStudentID bool
	for rows.Next() {
		var u, e, s bool
		if err := rows.Scan(&u, &e, &s); err != nil {
			return "", err
		}
		dupUsername = dupUsername || u
		dupEmail = dupEmail || e
		dupStudentID = dupStudentID || s
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	return conflictField(dupUsername, dupEmail, dupStudentID), nil
}

// mapError turns driver errors into repository errors. A unique violation that
// slipped past findConflict (a concurrent insert) still reports the field.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var dup *common.DuplicateFieldError
	if errors.As(err, &dup) {
		return dup
	}
	if name, ok := dbx.UniqueViolation(err); ok {
		if field, known := constraintFields[name]; known {
			return &common.DuplicateFieldError{Field: field}
		}
		return common.ErrorAlreadyExists
	}
	if dbx.IsNoRows(err) || dbx.IsInvalidText(err) {
		return common.ErrorNotFound
	}
	return fmt.Errorf("db error: %w", err)
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (username, email, student_id, salt, master_key_verifier,
		                    name, department, bio, phone, avatar, role)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at, updated_at
		 `

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		field, err := findConflict(ctx, tx, user.Username, user.Email, user.StudentID, "")
		if err != nil {
			return err
		}
		if field != "" {
			return &common.DuplicateFieldError{Field: field}
		}

		return tx.QueryRowContext(ctx, query,
			user.Username, user.Email, user.StudentID, user.Salt, user.Verifier,
			user.Name, user.Department, user.Bio, user.Phone, user.Avatar, user.Role,
		).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	})

	if err != nil {
		return nil, mapError(err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return user, nil
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		 WHERE username = $1 OR email = $1
		 ORDER BY username = $1 DESC
		 LIMIT 1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, login))
	if err != nil {
		return nil, mapError(err)
	}
	return user, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	values := map[string]any{"updated_at": squirrel.Expr("now()")}
	if patch.Name != nil {
		values["name"] = *patch.Name
	}
	if patch.Email != nil {
		values["email"] = *patch.Email
	}
	if patch.StudentID != nil {
		if *patch.StudentID == "" {
			values["student_id"] = nil
		} else {
			values["student_id"] = *patch.StudentID
		}
	}
	if patch.Department != nil {
		values["department"] = *patch.Department
	}
	if patch.Bio != nil {
		values["bio"] = *patch.Bio
	}
	if patch.Phone != nil {
		values["phone"] = *patch.Phone
	}
	if patch.Avatar != nil {
		values["avatar"] = *patch.Avatar
	}

	query, args, err := dbx.Builder.
		Update("users").
		SetMap(values).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var user *models.User
	err = dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if patch.Email != nil || (patch.StudentID != nil && *patch.StudentID != "") {
			email := ""
			if patch.Email != nil {
				email = *patch.Email
			}
			var studentID *string
			if patch.StudentID != nil && *patch.StudentID != "" {
				studentID = patch.StudentID
			}
			field, err := findConflict(ctx, tx, "", email, studentID, id)
			if err != nil {
				return err
			}
			if field != "" {
				return &common.DuplicateFieldError{Field: field}
			}
		}

		var err error
		user, err = scanUser(tx.QueryRowContext(ctx, query, args...))
		return err
	})

	if err != nil {
		return nil, mapError(err)
	}
	return user, nil
}

func (r *PostgresRepository) SetPassword(ctx context.Context, id string, salt, verifier []byte) error {
	query :=
		`UPDATE users SET salt = $1, master_key_verifier = $2, updated_at = $3
		 WHERE id = $4
		 `

	res, err := r.db.ExecContext(ctx, query, salt, verifier, time.Now().UTC(), id)
	if err != nil {
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
