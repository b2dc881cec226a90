// Package grpc exposes the operational gRPC surface: the standard health
// service, driven by a periodic database probe, and server reflection.
package grpc

import (
	"context"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/light-bringer/inventory-service/internal/platform/logger"
)

const defaultProbeInterval = 10 * time.Second

// Pinger checks a dependency, typically the database.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	Log *logger.Logger
	// DB is probed every ProbeInterval; nil keeps the server SERVING.
	DB            Pinger
	ProbeInterval time.Duration
	// ServiceName is reported alongside the overall ("") health status.
	ServiceName string
	Tracing     bool
}

type Server struct {
	srv    *grpc.Server
	health *health.Server
	cfg    Config
}

func NewServer(cfg Config) *Server {
	if cfg.Log == nil {
		cfg.Log = logger.Nop()
	}
	if cfg.ProbeInterval <= 0 {
		cfg.ProbeInterval = defaultProbeInterval
	}

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(logUnary(cfg.Log), recoverUnary(cfg.Log)),
	}
	if cfg.Tracing {
		opts = append(opts, grpc.StatsHandler(otelgrpc.NewServerHandler()))
	}

	srv := grpc.NewServer(opts...)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)

	s := &Server{srv: srv, health: hs, cfg: cfg}
	s.setStatus(healthpb.HealthCheckResponse_SERVING)
	return s
}

func (s *Server) Serve(lis net.Listener) error {
	return s.srv.Serve(lis)
}

// Probe pings the database once and updates the health status.
func (s *Server) Probe(ctx context.Context) {
	if s.cfg.DB == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ProbeInterval)
	defer cancel()

	if err := s.cfg.DB.Ping(ctx); err != nil {
		s.cfg.Log.Warn("database probe failed", "error", err)
		s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	s.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// WatchHealth probes until ctx is done.
func (s *Server) WatchHealth(ctx context.Context) {
	if s.cfg.DB == nil {
		return
	}
	ticker := time.NewTicker(s.cfg.ProbeInterval)
	defer ticker.Stop()

	s.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Probe(ctx)
		}
	}
}

// GracefulStop marks the server NOT_SERVING and drains in-flight calls.
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.srv.GracefulStop()
}

// Stop closes every connection without waiting for in-flight calls.
func (s *Server) Stop() { s.srv.Stop() }

func (s *Server) setStatus(st healthpb.HealthCheckResponse_ServingStatus) {
	s.health.SetServingStatus("", st)
	if s.cfg.ServiceName != "" {
		s.health.SetServingStatus(s.cfg.ServiceName, st)
	}
}
