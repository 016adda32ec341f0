package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/edvora/internal/common"
	"github.com/dmitrijs2005/edvora/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps users in process memory. Data is lost on restart.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
	now   func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*models.User), now: time.Now}
}

func clone(u *models.User) *models.User {
	c := *u
	c.Salt = append([]byte(nil), u.Salt...)
	c.Verifier = append([]byte(nil), u.Verifier...)
	if u.StudentID != nil {
		s := *u.StudentID
		c.StudentID = &s
	}
	return &c
}

// conflict must be called with mu held.
func (r *MemoryRepository) conflict(username, email string, studentID *string, exceptID string) string {
	var dupUsername, dupEmail, dupStudentID bool
	for id, u := range r.users {
		if id == exceptID {
			continue
		}
		dupUsername = dupUsername || (username != "" && u.Username == username)
		dupEmail = dupEmail || (email != "" && u.Email == email)
		dupStudentID = dupStudentID || (studentID != nil && u.StudentID != nil && *u.StudentID == *studentID)
	}
	return conflictField(dupUsername, dupEmail, dupStudentID)
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if field := r.conflict(user.Username, user.Email, user.StudentID, ""); field != "" {
		return nil, &common.DuplicateFieldError{Field: field}
	}

	now := r.now().UTC()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = clone(user)

	return user, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(u), nil
}

func (r *MemoryRepository) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var byEmail *models.User
	for _, u := range r.users {
		if u.Username == login {
			return clone(u), nil
		}
		if u.Email == login {
			byEmail = u
		}
	}
	if byEmail == nil {
		return nil, common.ErrorNotFound
	}
	return clone(byEmail), nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	email := ""
	if patch.Email != nil {
		email = *patch.Email
	}
	var studentID *string
	if patch.StudentID != nil && *patch.StudentID != "" {
		studentID = patch.StudentID
	}
	if field := r.conflict("", email, studentID, id); field != "" {
		return nil, &common.DuplicateFieldError{Field: field}
	}

	updated := clone(u)
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Email != nil {
		updated.Email = *patch.Email
	}
	if patch.StudentID != nil {
		updated.StudentID = studentID
	}
	if patch.Department != nil {
		updated.Department = *patch.Department
	}
	if patch.Bio != nil {
		updated.Bio = *patch.Bio
	}
	if patch.Phone != nil {
		updated.Phone = *patch.Phone
	}
	if patch.Avatar != nil {
		updated.Avatar = *patch.Avatar
	}
	updated.UpdatedAt = r.now().UTC()
	r.users[id] = updated

	return clone(updated), nil
}

func (r *MemoryRepository) SetPassword(ctx context.Context, id string, salt, verifier []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.Salt = append([]byte(nil), salt...)
	u.Verifier = append([]byte(nil), verifier...)
	u.UpdatedAt = r.now().UTC()
	return nil
}
