package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-catalog-admin/internal/config"
	"github.com/MKhiriev/go-catalog-admin/internal/handler"
	"github.com/MKhiriev/go-catalog-admin/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHTTPHandler
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	if err := s.run(context.Background()); err != nil {
		s.logger.Err(err).Msg("error running server")
		return err
	}
	return nil
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until parent is done or a stop signal arrives, then shuts the
// server down gracefully. A listener failure is returned at once.
func (s *server) run(parent context.Context) error {
	ctx, stop := signal.NotifyContext(
		parent,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serveErr := make(chan error, 1)
	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	// finish started server
	s.Shutdown()
	if err := <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
