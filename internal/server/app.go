// Package server wires configuration, storage, services and the HTTP and gRPC
// endpoints into a runnable application.
package server

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/edvora/internal/logging"
	"github.com/dmitrijs2005/edvora/internal/server/auth"
	"github.com/dmitrijs2005/edvora/internal/server/config"
	"github.com/dmitrijs2005/edvora/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/edvora/internal/server/rest"
	"github.com/dmitrijs2005/edvora/internal/server/services"

	gs "github.com/dmitrijs2005/edvora/internal/server/grpc"
)

// Runner is a long-lived endpoint stopped by cancelling its context.
type Runner interface {
	Run(ctx context.Context) error
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	repos   repomanager.RepositoryManager
	runners map[string]Runner
}

// NewApp selects the storage backend and builds both endpoints. It never
// fails: an unreachable database degrades to in-memory storage.
func NewApp(ctx context.Context, c *config.Config, l logging.Logger) *App {
	logger := l.With("module", "app")

	if c.UsesDefaultSecret() {
		logger.Warn(ctx, "using the built-in token secret; set JWT_SECRET in production")
	}

	repos := repomanager.Open(ctx, c.DatabaseDSN, l)
	tokens := auth.NewTokenService(c.SecretKey, c.TokenValidityDuration)

	svc := rest.Services{
		Users:    services.NewUserService(repos.Users(), tokens, l),
		Avatars:  services.NewAvatarService(c, repos.Users()),
		Tasks:    services.NewTaskService(repos.Tasks()),
		Events:   services.NewEventService(repos.Events()),
		Pomodoro: services.NewPomodoroService(repos.Sessions()),
		Stats:    services.NewStatsService(repos.Tasks()),
	}

	return &App{
		config: c,
		logger: logger,
		repos:  repos,
		runners: map[string]Runner{
			"http": rest.NewHTTPServer(c.EndpointAddrHTTP, l, svc, tokens, repos, c.CORSOrigins),
			"grpc": gs.NewHealthServer(c.EndpointAddrGRPC, l, repos, c.HealthCheckInterval),
		},
	}
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "signal received", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run blocks until ctx is cancelled, a signal arrives or any endpoint fails.
// Either way every endpoint is stopped and storage is closed before returning.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.repos.Mode().Database())

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup
	for name, r := range app.runners {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.Run(ctx); err != nil {
				app.logger.Error(ctx, "endpoint failed", "endpoint", name, "error", err)
				cancelFunc()
			}
		}()
	}

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "close storage", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
