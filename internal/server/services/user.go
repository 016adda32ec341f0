package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/edvora/internal/common"
	"github.com/dmitrijs2005/edvora/internal/logging"
	"github.com/dmitrijs2005/edvora/internal/server/models"
	"github.com/dmitrijs2005/edvora/internal/server/repositories/users"
)

const (
	minPasswordLength = 6
	minUsernameLength = 3
	defaultDepartment = "Computer Science"
)

// TokenIssuer signs session tokens; *auth.TokenService implements it.
type TokenIssuer interface {
	Issue(userID, username, email, role string) (string, error)
}

type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	Name       string
	StudentID  string
	Department string
}

// AuthResult is returned by a successful register or login.
type AuthResult struct {
	Token string
	User  models.PublicUser
}

// UserService provides the account operations behind /api/auth.
type UserService struct {
	store  *CredentialStore
	users  users.Repository
	tokens TokenIssuer
	logger logging.Logger
}

func NewUserService(repo users.Repository, tokens TokenIssuer, logger logging.Logger) *UserService {
	return &UserService{
		store:  NewCredentialStore(repo),
		users:  repo,
		tokens: tokens,
		logger: logger.With("module", "user_service"),
	}
}

func defaultAvatar(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=667eea&color=fff"
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)

	if in.Username == "" || in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, common.NewValidationError("Username, email, password, and name are required")
	}
	if len(in.Password) < minPasswordLength {
		return nil, common.NewValidationError("Password must be at least %d characters", minPasswordLength)
	}
	if len(in.Username) < minUsernameLength {
		return nil, common.NewValidationError("Username must be at least %d characters", minUsernameLength)
	}

	department := strings.TrimSpace(in.Department)
	if department == "" {
		department = defaultDepartment
	}

	user, err := s.store.Create(ctx, Candidate{
		Username:   in.Username,
		Email:      in.Email,
		Password:   in.Password,
		Name:       in.Name,
		StudentID:  optional(in.StudentID),
		Department: department,
		Avatar:     defaultAvatar(in.Name),
		Role:       models.RoleStudent,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return s.issue(user)
}

// Login accepts a username or an email as identifier. A missing account and a
// wrong password both return common.ErrorInvalidCredentials; only the log
// records which one it was.
func (s *UserService) Login(ctx context.Context, identifier, password string) (*AuthResult, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, common.NewValidationError("Email/Username and password are required")
	}
	if strings.Contains(identifier, "@") {
		identifier = strings.ToLower(identifier)
	}

	user, err := s.store.Verify(ctx, identifier, password)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		s.logger.Warn(ctx, "login failed", "reason", "user not found")
		return nil, common.ErrorInvalidCredentials
	case errors.Is(err, common.ErrorInvalidCredentials):
		s.logger.Warn(ctx, "login failed", "reason", "password mismatch")
		return nil, common.ErrorInvalidCredentials
	case err != nil:
		return nil, err
	}

	return s.issue(user)
}

func (s *UserService) Profile(ctx context.Context, userID string) (*models.PublicUser, error) {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := user.Public()
	return &p, nil
}

// ProfileInput holds the editable profile fields; nil leaves a field as is.
type ProfileInput struct {
	Name       *string
	Email      *string
	StudentID  *string
	Department *string
	Bio        *string
	Phone      *string
	Avatar     *string
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*models.PublicUser, error) {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, common.NewValidationError("Name cannot be empty")
		}
		in.Name = &name
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email == "" {
			return nil, common.NewValidationError("Email cannot be empty")
		}
		in.Email = &email
	}
	if in.StudentID != nil {
		id := strings.TrimSpace(*in.StudentID)
		in.StudentID = &id
	}

	user, err := s.users.Update(ctx, userID, models.UserPatch{
		Name:       in.Name,
		Email:      in.Email,
		StudentID:  in.StudentID,
		Department: in.Department,
		Bio:        in.Bio,
		Phone:      in.Phone,
		Avatar:     in.Avatar,
	})
	if err != nil {
		return nil, err
	}
	p := user.Public()
	return &p, nil
}

// ChangePassword requires the current password before storing a new one.
func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	if current == "" || next == "" {
		return common.NewValidationError("Current and new password are required")
	}
	if len(next) < minPasswordLength {
		return common.NewValidationError("Password must be at least %d characters", minPasswordLength)
	}

	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := s.store.Verify(ctx, user.Username, current); err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			s.logger.Warn(ctx, "password change rejected", "user_id", userID)
		}
		return err
	}

	if err := s.store.SetPassword(ctx, userID, next); err != nil {
		return err
	}
	s.logger.Info(ctx, "password changed", "user_id", userID)
	return nil
}

func (s *UserService) issue(user *models.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.ID, user.Username, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return &AuthResult{Token: token, User: user.Public()}, nil
}
