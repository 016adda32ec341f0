package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/edvora/internal/client/api"
	"github.com/dmitrijs2005/edvora/internal/common"
	"github.com/dmitrijs2005/edvora/internal/filex"
	"github.com/dmitrijs2005/edvora/internal/netx"
)

// report prints err and drops the session when the server rejected the token.
func (a *App) report(err error) error {
	var apiErr *api.Error
	switch {
	case errors.Is(err, api.ErrUnauthorized) && a.isLoggedIn():
		a.clearSession()
		fmt.Fprintln(a.out, "Session expired, please log in again")
	case errors.As(err, &apiErr):
		fmt.Fprintln(a.out, "Error:", apiErr.Message)
	case errors.Is(err, api.ErrUnavailable):
		a.setMode(ModeOffline)
		fmt.Fprintln(a.out, "Server unavailable")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
	return err
}

func (a *App) clearSession() {
	a.user = nil
	a.backend.SetToken("")
}

func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) askPassword() (string, error) {
	pw, err := getPassword(a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

func (a *App) Register(ctx context.Context) error {
	var in api.RegisterInput
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Username", &in.Username},
		{"Email", &in.Email},
		{"Full name", &in.Name},
		{"Student ID (optional)", &in.StudentID},
		{"Department (optional)", &in.Department},
	}
	for _, f := range fields {
		v, err := a.ask(f.prompt)
		if err != nil {
			return a.report(err)
		}
		*f.dst = v
	}

	pw, err := a.askPassword()
	if err != nil {
		return a.report(err)
	}
	in.Password = pw

	user, err := a.backend.Register(ctx, in)
	if err != nil {
		return a.report(err)
	}
	a.user = user
	fmt.Fprintf(a.out, "Registration successful! Logged in as %s\n", user.Username)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	identifier, err := a.ask("Email or username")
	if err != nil {
		return a.report(err)
	}
	pw, err := a.askPassword()
	if err != nil {
		return a.report(err)
	}

	user, err := a.backend.Login(ctx, identifier, pw)
	if err != nil {
		return a.report(err)
	}
	a.user = user
	fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Name)
	return nil
}

func (a *App) Logout(context.Context) error {
	a.clearSession()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	u, err := a.backend.Profile(ctx)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "%s (%s)\n  email: %s\n  role: %s\n", u.Name, u.Username, u.Email, u.Role)
	if u.StudentID != "" {
		fmt.Fprintf(a.out, "  student id: %s\n", u.StudentID)
	}
	if u.Department != "" {
		fmt.Fprintf(a.out, "  department: %s\n", u.Department)
	}
	return nil
}

// UploadAvatar sends a local image to object storage and sets it as the
// profile picture.
func (a *App) UploadAvatar(ctx context.Context, path string) error {
	data, contentType, err := filex.ReadImage(path, filex.MaxImageSize)
	if err != nil {
		return a.report(err)
	}

	up, err := a.backend.AvatarUpload(ctx, contentType)
	if err != nil {
		return a.report(err)
	}
	if err := netx.UploadToPresignedURL(ctx, up.UploadURL, contentType, data); err != nil {
		return a.report(err)
	}

	fmt.Fprintln(a.out, "Avatar updated:", up.AvatarURL)
	return nil
}

func (a *App) ListTasks(ctx context.Context) error {
	tasks, err := a.backend.Tasks(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks")
		return nil
	}
	for _, t := range tasks {
		fmt.Fprintln(a.out, formatTask(t))
	}
	return nil
}

func formatTask(t api.Task) string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s  %s", mark, t.ID, t.Title)
	if t.Course != "" {
		fmt.Fprintf(&b, " (%s)", t.Course)
	}
	if t.Deadline != nil {
		fmt.Fprintf(&b, " due %s", *t.Deadline)
	}
	fmt.Fprintf(&b, " [%s, %s]", t.Priority, t.Status)
	return b.String()
}

func (a *App) AddTask(ctx context.Context) error {
	var in api.NewTask
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Title", &in.Title},
		{"Course (optional)", &in.Course},
		{"Priority low/medium/high (optional)", &in.Priority},
		{"Deadline YYYY-MM-DD (optional)", &in.Deadline},
	}
	for _, f := range fields {
		v, err := a.ask(f.prompt)
		if err != nil {
			return a.report(err)
		}
		*f.dst = v
	}

	t, err := a.backend.CreateTask(ctx, in)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Added:", formatTask(*t))
	return nil
}

func (a *App) CompleteTask(ctx context.Context, id string) error {
	t, err := a.backend.SetTaskStatus(ctx, id, "completed")
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Completed:", formatTask(*t))
	return nil
}

func (a *App) DeleteTask(ctx context.Context, id string) error {
	if err := a.backend.DeleteTask(ctx, id); err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Task deleted")
	return nil
}

func (a *App) ListEvents(ctx context.Context, month string) error {
	events, err := a.backend.Events(ctx, month)
	if err != nil {
		return a.report(err)
	}
	if len(events) == 0 {
		fmt.Fprintln(a.out, "No events")
		return nil
	}
	for _, e := range events {
		slot := ""
		if e.StartTime != "" {
			slot = " " + e.StartTime
			if e.EndTime != "" {
				slot += "-" + e.EndTime
			}
		}
		fmt.Fprintf(a.out, "%s%s  %s [%s]  %s\n", e.Date, slot, e.Title, e.Type, e.ID)
	}
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	s, err := a.backend.Stats(ctx)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Tasks: %d total, %d completed, %d pending (%d%% done)\n",
		s.TotalTasks, s.CompletedTasks, s.PendingTasks, s.CompletionRate)
	return nil
}

func (a *App) Quote(ctx context.Context) error {
	q, err := a.backend.Quote(ctx)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, q)
	return nil
}

func (a *App) Health(ctx context.Context) error {
	h, err := a.backend.Health(ctx)
	if err != nil {
		return a.report(err)
	}
	a.setMode(ModeOnline)
	fmt.Fprintf(a.out, "Server %s, database: %s (%s)\n", h.Server, h.Database, h.Note)
	return nil
}
