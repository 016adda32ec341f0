// Package rest exposes the Edvora services as a JSON API over HTTP.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/edvora/internal/logging"
	"github.com/dmitrijs2005/edvora/internal/server/auth"
	"github.com/dmitrijs2005/edvora/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/edvora/internal/server/services"
)

const (
	idleTimeout    = time.Minute
	readTimeout    = 5 * time.Second
	writeTimeout   = 10 * time.Second
	shutdownPeriod = 30 * time.Second

	maxBodyBytes = 1 << 20

	apiVersion = "2.0"
)

// TokenVerifier validates bearer tokens; *auth.TokenService implements it.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Storage reports which backend is serving requests.
type Storage interface {
	Mode() repomanager.Mode
}

// Services bundles the business logic the handlers call into.
type Services struct {
	Users    *services.UserService
	Avatars  *services.AvatarService
	Tasks    *services.TaskService
	Events   *services.EventService
	Pomodoro *services.PomodoroService
	Stats    *services.StatsService
}

type HTTPServer struct {
	address     string
	logger      logging.Logger
	svc         Services
	tokens      TokenVerifier
	storage     Storage
	corsOrigins []string
	now         func() time.Time
}

func NewHTTPServer(address string, logger logging.Logger, svc Services, tokens TokenVerifier, storage Storage, corsOrigins []string) *HTTPServer {
	return &HTTPServer{
		address:     address,
		logger:      logger.With("module", "rest"),
		svc:         svc,
		tokens:      tokens,
		storage:     storage,
		corsOrigins: corsOrigins,
		now:         time.Now,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *HTTPServer) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		IdleTimeout:  idleTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
		defer cancel()
		shutdownErr <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String(),
		"database", s.storage.Mode().Database())

	if err := srv.Serve(listen); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-shutdownErr
}
