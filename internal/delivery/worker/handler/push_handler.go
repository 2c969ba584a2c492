// Package handler contains the push-ingress handlers.
package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"voltfeed/config"
	deliverycontext "voltfeed/internal/delivery/context"
	"voltfeed/internal/domain/constants"
	"voltfeed/internal/domain/service"
	"voltfeed/internal/infra/push"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// pushEnvelope is the JSON carried in the message data field.
type pushEnvelope struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
}

// PushHandler receives Pub/Sub-format push deliveries on the local ingress
// and hands them to the in-process push bridge.
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	bridge         *push.Bridge
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Bridge *push.Bridge `optional:"true"`
}

// NewPushHandler creates a new push ingress handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Outside development the ingress only accepts authenticated Pub/Sub
	// push requests.
	verifyPushAuth := params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		bridge:         params.Bridge,
	}
}

// HandlePush handles an incoming push delivery
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.bridge == nil {
		return c.NoContent(http.StatusNotFound)
	}

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Ingress] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Ingress] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Ingress] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var envelope pushEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		h.logger.Error("[Ingress] Failed to parse delivery payload", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(c, &pushMsg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	reqLogger.Info("[Ingress] Dispatching push delivery",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("title", envelope.Title),
	)

	h.bridge.Dispatch(service.PushPayload{
		Title: envelope.Title,
		Body:  envelope.Body,
		Data:  envelope.Data,
	})

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, context, or generates a new one
func (h *PushHandler) extractRequestID(c echo.Context, pushMsg *PubSubMessage) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(c.Request().Context()); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience must match the push endpoint URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
