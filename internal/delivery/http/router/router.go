// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"voltfeed/config"
	"voltfeed/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config        *config.Config
	FeedHandler   *handler.FeedHandler
	StatusHandler *handler.StatusHandler
	TestHandler   *handler.TestHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg           *config.Config
	feedHandler   *handler.FeedHandler
	statusHandler *handler.StatusHandler
	testHandler   *handler.TestHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:           params.Config,
		feedHandler:   params.FeedHandler,
		statusHandler: params.StatusHandler,
		testHandler:   params.TestHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)
	e.GET("/status", r.statusHandler.GetStatus)

	notificationGroup := e.Group("/notifications")
	{
		notificationGroup.GET("", r.feedHandler.GetFeed)
		notificationGroup.POST("/refresh", r.feedHandler.Refresh)
		notificationGroup.POST("/read-all", r.feedHandler.MarkAllRead)
		notificationGroup.POST("/:id/read", r.feedHandler.MarkRead)
		notificationGroup.DELETE("/:id", r.feedHandler.Delete)
		notificationGroup.GET("/:id/target", r.feedHandler.GetTarget)
	}

	// Development-only routes
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.POST("/push", r.testHandler.SendPush)
		}
	}
}
