// Package grpc runs the gRPC health endpoint used by orchestrators to probe
// the API process.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/edvora/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// StorageService is the health service name tracking the storage backend.
const StorageService = "edvora.storage"

const (
	defaultCheckInterval = 15 * time.Second
	pingTimeout          = 5 * time.Second
)

// Pinger reports storage reachability; repomanager.RepositoryManager implements it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthServer struct {
	address  string
	logger   logging.Logger
	storage  Pinger
	interval time.Duration
	health   *health.Server
	last     healthpb.HealthCheckResponse_ServingStatus
}

func NewHealthServer(a string, l logging.Logger, storage Pinger, interval time.Duration) *HealthServer {
	if interval <= 0 {
		interval = defaultCheckInterval
	}
	return &HealthServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		storage:  storage,
		interval: interval,
		health:   health.NewServer(),
	}
}

func (s *HealthServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *HealthServer) serve(ctx context.Context, listen net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	healthpb.RegisterHealthServer(srv, s.health)
	reflection.Register(srv)

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.checkStorage(ctx)

	go s.watchStorage(ctx)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC health server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

func (s *HealthServer) watchStorage(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.checkStorage(ctx)
		}
	}
}

// checkStorage pings the backend and publishes the result under
// StorageService. Only transitions are logged.
func (s *HealthServer) checkStorage(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	next := healthpb.HealthCheckResponse_SERVING
	err := s.storage.Ping(pingCtx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		next = healthpb.HealthCheckResponse_NOT_SERVING
	}

	if next != s.last {
		if err != nil {
			s.logger.Warn(ctx, "storage unhealthy", "error", err)
		} else {
			s.logger.Info(ctx, "storage healthy")
		}
		s.last = next
	}
	s.health.SetServingStatus(StorageService, next)
}
