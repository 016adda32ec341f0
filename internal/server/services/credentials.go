// Package services contains server-side business logic. Handlers call these
// types; they talk to storage only through repository interfaces.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/edvora/internal/common"
	"github.com/dmitrijs2005/edvora/internal/cryptox"
	"github.com/dmitrijs2005/edvora/internal/server/models"
	"github.com/dmitrijs2005/edvora/internal/server/repositories/users"
)

// Candidate is a user about to be registered. Password is plaintext and is
// hashed before it reaches storage.
type Candidate struct {
	Username   string
	Email      string
	Password   string
	Name       string
	StudentID  *string
	Department string
	Avatar     string
	Role       models.Role
}

// CredentialStore owns password hashing and user lookup. It is the only place
// that ever sees a plaintext password.
type CredentialStore struct {
	users users.Repository
}

func NewCredentialStore(repo users.Repository) *CredentialStore {
	return &CredentialStore{users: repo}
}

// Create stores c with a fresh salt and an argon2id verifier. Duplicates come
// back from the repository as *common.DuplicateFieldError.
func (s *CredentialStore) Create(ctx context.Context, c Candidate) (*models.User, error) {
	salt := cryptox.NewSalt()
	user := &models.User{
		Username:   c.Username,
		Email:      c.Email,
		StudentID:  c.StudentID,
		Salt:       salt,
		Verifier:   cryptox.HashPassword([]byte(c.Password), salt),
		Name:       c.Name,
		Department: c.Department,
		Avatar:     c.Avatar,
		Role:       c.Role,
	}
	return s.users.Create(ctx, user)
}

// Verify looks identifier up as username or email and checks password. It
// returns common.ErrorNotFound or common.ErrorInvalidCredentials so callers
// can log the difference; clients must only ever see the latter.
func (s *CredentialStore) Verify(ctx context.Context, identifier, password string) (*models.User, error) {
	user, err := s.users.GetByLogin(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if !cryptox.VerifyPassword([]byte(password), user.Salt, user.Verifier) {
		return nil, common.ErrorInvalidCredentials
	}
	return user, nil
}

func (s *CredentialStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// SetPassword re-hashes password with a new salt. This is the only path that
// rewrites the stored verifier.
func (s *CredentialStore) SetPassword(ctx context.Context, id, password string) error {
	salt := cryptox.NewSalt()
	verifier := cryptox.HashPassword([]byte(password), salt)
	if err := s.users.SetPassword(ctx, id, salt, verifier); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return err
	}
	return nil
}
