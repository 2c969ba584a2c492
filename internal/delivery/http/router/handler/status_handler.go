package handler

import (
	"net/http"

	"voltfeed/internal/delivery/http/response"
	"voltfeed/internal/domain/service"
	"voltfeed/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StatusHandlerParams holds dependencies for StatusHandler, injected by Fx.
type StatusHandlerParams struct {
	fx.In

	FeedUC   usecase.FeedUsecase
	Identity service.IdentityProvider
}

// StatusHandler reports daemon health and sync state.
type StatusHandler struct {
	feedUC   usecase.FeedUsecase
	identity service.IdentityProvider
}

// NewStatusHandler is the constructor for StatusHandler
func NewStatusHandler(params StatusHandlerParams) *StatusHandler {
	return &StatusHandler{
		feedUC:   params.FeedUC,
		identity: params.Identity,
	}
}

// HealthCheck is the liveness endpoint.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetStatus reports the sync engine state for the current identity.
func (h *StatusHandler) GetStatus(c echo.Context) error {
	identity := h.identity.Current()
	snapshot := h.feedUC.Snapshot()

	return response.Success(c, http.StatusOK, map[string]any{
		"authenticated": identity.Authenticated,
		"userId":        identity.UserID,
		"pushActive":    snapshot.PushActive,
		"isLoading":     snapshot.IsLoading,
		"lastError":     snapshot.LastError,
		"unreadCount":   snapshot.UnreadCount,
	}, "")
}
