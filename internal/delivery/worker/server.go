// Package worker runs the local push-ingress HTTP server.
package worker

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"voltfeed/config"
	"voltfeed/internal/delivery"
	"voltfeed/internal/delivery/middleware"
	"voltfeed/internal/delivery/worker/handler"
	"voltfeed/internal/domain/constants"
	"voltfeed/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ingressServer struct {
	cfg     *config.Config
	logger  *slog.Logger
	server  *echo.Echo
	enabled bool
}

// ServerParams holds dependencies for the push-ingress server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the push-ingress HTTP server. It only listens when the
// local push provider is configured.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Pub/Sub push endpoint
	e.POST("/push", params.PushHandler.HandlePush)

	enabled := params.Cfg.Push != nil &&
		params.Cfg.Push.Provider == constants.PushProviderLocal &&
		params.Cfg.Push.IngressPort > 0

	srv := &ingressServer{
		cfg:     params.Cfg,
		logger:  params.Logger,
		server:  e,
		enabled: enabled,
	}

	if enabled {
		params.Lc.Append(fx.Hook{
			OnStop: srv.stop,
		})
	}

	return srv, nil
}

// Serve starts the push-ingress HTTP server
func (s *ingressServer) Serve(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("Push ingress disabled, not listening")

		return nil
	}

	hostPort := net.JoinHostPort("127.0.0.1", strconv.Itoa(s.cfg.Push.IngressPort))
	s.logger.Info("Starting push-ingress HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the push-ingress server
func (s *ingressServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down push-ingress HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
