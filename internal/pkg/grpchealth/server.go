package grpchealth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
	"zapshift/pkg/logger"
)

// ServiceName имя сервиса в grpc.health.v1 для проверок конкретного API.
const ServiceName = "zapshift.API"

const (
	keepaliveTime    = 5 * time.Minute
	keepaliveTimeout = 3 * time.Second
)

// Server отдает grpc.health.v1: SERVING от Start до Shutdown.
type Server struct {
	log    logger.Logger
	grpc   *grpc.Server
	health *health.Server
}

func New(log logger.Logger) *Server {
	grpcServer := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    keepaliveTime,
			Timeout: keepaliveTimeout,
		}),
	)
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	return &Server{
		log:    log.With(logger.NewField("component", "grpc-health")),
		grpc:   grpcServer,
		health: healthServer,
	}
}

// Serve помечает сервис как SERVING и блокируется до остановки сервера.
func (s *Server) Serve(listener net.Listener) error {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	s.log.Info("gRPC health server started", logger.NewField("addr", listener.Addr().String()))
	err := s.grpc.Serve(listener)
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc health serve: %w", err)
	}
	return nil
}

// ListenAndServe слушает TCP-порт и вызывает Serve.
func (s *Server) ListenAndServe(port string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("grpc health listen: %w", err)
	}
	return s.Serve(listener)
}

// Shutdown переводит сервис в NOT_SERVING и ждет завершения активных RPC.
// По истечении ctx соединения закрываются принудительно.
func (s *Server) Shutdown(ctx context.Context) {
	s.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		s.log.Warn("gRPC health graceful stop timed out, forcing stop")
		s.grpc.Stop()
	}
}
