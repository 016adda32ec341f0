package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(s string) error { f.calls = append(f.calls, s); return nil }

func (f *fakeExec) isLoggedIn() bool                     { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error       { return f.record("register") }
func (f *fakeExec) Profile(context.Context) error        { return f.record("profile") }
func (f *fakeExec) ListTasks(context.Context) error      { return f.record("tasks") }
func (f *fakeExec) AddTask(context.Context) error        { return f.record("add") }
func (f *fakeExec) Stats(context.Context) error          { return f.record("stats") }
func (f *fakeExec) Quote(context.Context) error          { return f.record("quote") }
func (f *fakeExec) Health(context.Context) error         { return f.record("health") }
func (f *fakeExec) CompleteTask(_ context.Context, id string) error {
	return f.record("done " + id)
}
func (f *fakeExec) UploadAvatar(_ context.Context, path string) error {
	return f.record("avatar " + path)
}
func (f *fakeExec) DeleteTask(_ context.Context, id string) error {
	return f.record("delete " + id)
}
func (f *fakeExec) ListEvents(_ context.Context, month string) error {
	return f.record("events " + month)
}
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}

func runScript(f *fakeExec, lines ...string) string {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	runREPL(context.Background(), f, func() string { return "" }, reader, &out)
	return out.String()
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	f := &fakeExec{}

	out := runScript(f,
		"tasks",
		"quote",
		"login",
		"tasks",
		"add",
		"done",
		"done t1",
		"delete t1",
		"events 2025-03",
		"events",
		"stats",
		"profile",
		"avatar me.png",
		"logout",
		"exit",
		"tasks",
	)

	assert.Equal(t, []string{
		"quote", "login", "tasks", "add", "done t1", "delete t1",
		"events 2025-03", "events ", "stats", "profile", "avatar me.png", "logout",
	}, f.calls)
	assert.Contains(t, out, "Please log in first")
	assert.Contains(t, out, "Usage: done <id>")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_HelpAndUnknown(t *testing.T) {
	f := &fakeExec{}
	out := runScript(f, "help", "", "dance")

	assert.Contains(t, out, "Available commands: register, login")
	assert.Contains(t, out, "Unknown command: dance")
	assert.Empty(t, f.calls)
}

func TestRunREPL_StopsOnEOFWithoutNewline(t *testing.T) {
	f := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), f, func() string { return "(x)" }, bufio.NewReader(strings.NewReader("quote")), &out)

	assert.Equal(t, []string{"quote"}, f.calls)
	assert.Contains(t, out.String(), "edvora (x)> ")
}
