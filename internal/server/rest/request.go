package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/edvora/internal/common"
	"github.com/dmitrijs2005/edvora/internal/server/models"
	"github.com/dmitrijs2005/edvora/internal/server/services"
)

var errBadBody = common.NewValidationError("Invalid request body")

// decodeJSON reads a single JSON object into dst. Unknown fields are ignored
// and an empty body decodes to the zero value.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	default:
		var (
			validation *common.ValidationError
			tooLarge   *http.MaxBytesError
		)
		if errors.As(err, &validation) || errors.As(err, &tooLarge) {
			return err
		}
		return errBadBody
	}
}

// dateField tracks whether a date was sent and whether it was sent empty.
type dateField struct {
	Set   bool
	Clear bool
	Value models.Date
}

func (d *dateField) UnmarshalJSON(b []byte) error {
	d.Set = true
	raw := strings.TrimSpace(string(b))
	if raw == "null" || raw == `""` {
		d.Clear = true
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return common.NewValidationError("Invalid date")
	}
	date, err := models.ParseDate(s)
	if err != nil {
		return common.NewValidationError("Invalid date %q", s)
	}
	d.Value = date
	return nil
}

func (d dateField) ptr() *models.Date {
	if !d.Set || d.Clear {
		return nil
	}
	v := d.Value
	return &v
}

type registerRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	StudentID  string `json:"studentId"`
	Department string `json:"department"`
}

type loginRequest struct {
	Email      string `json:"email"`
	Username   string `json:"username"`
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (l loginRequest) login() string {
	for _, v := range []string{l.Identifier, l.Email, l.Username} {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

type profileRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	StudentID  *string `json:"studentId"`
	Department *string `json:"department"`
	Bio        *string `json:"bio"`
	Phone      *string `json:"phone"`
	Avatar     *string `json:"avatar"`
}

func (p profileRequest) input() services.ProfileInput {
	return services.ProfileInput{
		Name:       p.Name,
		Email:      p.Email,
		StudentID:  p.StudentID,
		Department: p.Department,
		Bio:        p.Bio,
		Phone:      p.Phone,
		Avatar:     p.Avatar,
	}
}

type passwordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type avatarRequest struct {
	ContentType string `json:"contentType"`
}

type taskRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Course      *string   `json:"course"`
	Type        *string   `json:"type"`
	Priority    *string   `json:"priority"`
	Deadline    dateField `json:"deadline"`
	Status      *string   `json:"status"`
	Completed   *bool     `json:"completed"`
	Tags        *[]string `json:"tags"`
}

func (t taskRequest) input() services.TaskInput {
	return services.TaskInput{
		Title:         t.Title,
		Description:   t.Description,
		Course:        t.Course,
		Type:          t.Type,
		Priority:      t.Priority,
		Deadline:      t.Deadline.ptr(),
		ClearDeadline: t.Deadline.Clear,
		Status:        t.Status,
		Completed:     t.Completed,
		Tags:          t.Tags,
	}
}

type eventRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Date        dateField `json:"date"`
	StartTime   *string   `json:"startTime"`
	EndTime     *string   `json:"endTime"`
	Type        *string   `json:"type"`
	Color       *string   `json:"color"`
}

func (e eventRequest) input() services.EventInput {
	return services.EventInput{
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date.ptr(),
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Type:        e.Type,
		Color:       e.Color,
	}
}

type sessionRequest struct {
	Duration    *int       `json:"duration"`
	TaskName    string     `json:"taskName"`
	CompletedAt *time.Time `json:"completedAt"`
}

func (s sessionRequest) input() services.SessionInput {
	return services.SessionInput{
		Duration:    s.Duration,
		TaskName:    s.TaskName,
		CompletedAt: s.CompletedAt,
	}
}
