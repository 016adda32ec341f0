// Package models defines the server-side records shared by repositories,
// services and the REST layer.
package models

import "time"

// Role is one of the fixed account roles.
type Role string

const (
	RoleStudent  Role = "student"
	RoleAdmin    Role = "admin"
	RoleEmployer Role = "employer"
)

// User is the stored account record. Salt and Verifier never leave the
// server; use Public for anything that is returned to a client.
type User struct {
	ID         string
	Username   string
	Email      string
	StudentID  *string
	Salt       []byte
	Verifier   []byte
	Name       string
	Department string
	Bio        string
	Phone      string
	Avatar     string
	Role       Role
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PublicUser is the client-facing view of a User.
type PublicUser struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	StudentID  *string   `json:"studentId,omitempty"`
	Department string    `json:"department"`
	Bio        string    `json:"bio"`
	Phone      string    `json:"phone"`
	Avatar     string    `json:"avatar"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Name:       u.Name,
		StudentID:  u.StudentID,
		Department: u.Department,
		Bio:        u.Bio,
		Phone:      u.Phone,
		Avatar:     u.Avatar,
		Role:       u.Role,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// UserPatch lists profile fields to change; nil means "leave as is".
// Credentials are changed only through the password flow.
type UserPatch struct {
	Name       *string
	Email      *string
	StudentID  *string
	Department *string
	Bio        *string
	Phone      *string
	Avatar     *string
}
