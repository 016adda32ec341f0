package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/edvora/internal/client/api"
	"github.com/dmitrijs2005/edvora/internal/client/config"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// Backend is the API surface the commands use; *api.Client implements it.
type Backend interface {
	SetToken(token string)
	Register(ctx context.Context, in api.RegisterInput) (*api.User, error)
	Login(ctx context.Context, identifier, password string) (*api.User, error)
	Profile(ctx context.Context) (*api.User, error)
	AvatarUpload(ctx context.Context, contentType string) (*api.AvatarUpload, error)
	Tasks(ctx context.Context) ([]api.Task, error)
	CreateTask(ctx context.Context, in api.NewTask) (*api.Task, error)
	SetTaskStatus(ctx context.Context, id, status string) (*api.Task, error)
	DeleteTask(ctx context.Context, id string) error
	Events(ctx context.Context, month string) ([]api.Event, error)
	Stats(ctx context.Context) (*api.Stats, error)
	Quote(ctx context.Context) (string, error)
	Health(ctx context.Context) (*api.Health, error)
}

type App struct {
	config  *config.Config
	backend Backend
	user    *api.User
	reader  *bufio.Reader
	out     io.Writer

	mu   sync.Mutex
	mode Mode
}

func NewApp(c *config.Config) *App {
	return newApp(c, api.New(c.ServerURL, c.RequestTimeout), os.Stdin, os.Stdout)
}

func newApp(c *config.Config, b Backend, in io.Reader, out io.Writer) *App {
	return &App{config: c, backend: b, reader: bufio.NewReader(in), out: out}
}

func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to Edvora CLI (type 'help' for commands)")

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mode = mode
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) getStatus() string {
	s := ""
	if a.user != nil {
		s = a.user.Username + " "
	}
	s += string(a.currentMode())
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if _, err := a.backend.Health(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher probes /health every interval until ctx ends.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
