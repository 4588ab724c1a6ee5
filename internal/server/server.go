package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/handler"
	"github.com/MKhiriev/go-shop-api/internal/logger"
)

const shutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer opens the listeners of every transport that has both an
// address in cfg and a handler in handlers.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	var err error
	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		if servers.httpServer, err = newHTTPServer(handlers.HTTP.Init(), cfg, logger); err != nil {
			return nil, err
		}
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		if servers.gRPCServer, err = newGRPCServer(handlers.GRPC, cfg, logger); err != nil {
			if servers.httpServer != nil {
				_ = servers.httpServer.listener.Close()
			}
			return nil, err
		}
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) transports() []transport {
	var ts []transport
	if s.httpServer != nil {
		ts = append(ts, s.httpServer)
	}
	if s.gRPCServer != nil {
		ts = append(ts, s.gRPCServer)
	}
	return ts
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	transports := s.transports()
	failed := make(chan error, len(transports))

	for _, t := range transports {
		t := t
		s.logger.Info().Str("transport", t.name()).Msg("launching server")
		go func() {
			if err := t.serve(); err != nil {
				failed <- fmt.Errorf("%w: %s: %w", errServing, t.name(), err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop requested")
	case runErr = <-failed:
		s.logger.Err(runErr).Msg("server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	var shutdownErrs []error
	for _, t := range transports {
		if err := t.shutdown(shutdownCtx); err != nil {
			shutdownErrs = append(shutdownErrs, fmt.Errorf("%s: %w", t.name(), err))
		}
	}

	if err := errors.Join(shutdownErrs...); err != nil {
		s.logger.Err(err).Msg("server shutdown incomplete")
		return errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return runErr
}
