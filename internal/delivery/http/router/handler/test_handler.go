package handler

import (
	"log/slog"
	"net/http"

	"voltfeed/internal/delivery/http/response"
	domainerrors "voltfeed/internal/domain/errors"
	"voltfeed/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	Logger *slog.Logger
	Sender service.NotificationSender `optional:"true"`
}

// TestHandler exposes development-only endpoints. Registered only when
// testRoutes.enabled is set.
type TestHandler struct {
	logger *slog.Logger
	sender service.NotificationSender
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{
		logger: params.Logger,
		sender: params.Sender,
	}
}

// SendPushRequest represents the request body for a loopback push send
type SendPushRequest struct {
	Token string            `json:"token" validate:"required"`
	Title string            `json:"title" validate:"required"`
	Body  string            `json:"body" validate:"required"`
	Data  map[string]string `json:"data"`
}

// SendPush sends a real FCM message to the given token so the full
// push-receive path can be exercised end to end.
func (h *TestHandler) SendPush(c echo.Context) error {
	if h.sender == nil {
		return domainerrors.ErrFeatureDisabled.WithDetails("Firebase sender is not configured")
	}

	var req SendPushRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.sender.SendSingleNotification(c.Request().Context(), req.Token, req.Title, req.Body, req.Data); err != nil {
		h.logger.Error("[Test] Push send failed", slog.Any("error", err))

		return domainerrors.NewRemoteCallError(err, "failed to send push notification")
	}

	return response.Success(c, http.StatusOK, nil, "Push notification sent")
}
