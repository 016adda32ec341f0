// Package users stores accounts. Two implementations share the Repository
// contract: PostgresRepository and MemoryRepository.
package users

import (
	"context"

	"github.com/dmitrijs2005/edvora/internal/server/models"
)

type Repository interface {
	// Create inserts user and fills its ID and timestamps. A clash on
	// username, email or student id yields *common.DuplicateFieldError for
	// the first of those fields, checked in that order.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByLogin matches username exactly or email (already lower-cased).
	GetByLogin(ctx context.Context, login string) (*models.User, error)
	Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
	SetPassword(ctx context.Context, id string, salt, verifier []byte) error
}

// conflictField returns the first duplicated field name in the fixed
// username, email, studentId priority, or "" when nothing clashes.
func conflictField(username, email, studentID bool) string {
	switch {
	case username:
		return "username"
	case email:
		return "email"
	case studentID:
		return "studentId"
	}
	return ""
}
