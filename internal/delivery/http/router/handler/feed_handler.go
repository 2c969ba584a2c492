// Package handler contains the HTTP handlers of the local API.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"voltfeed/internal/delivery/http/response"
	domainerrors "voltfeed/internal/domain/errors"
	"voltfeed/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FeedHandlerParams holds dependencies for FeedHandler, injected by Fx.
type FeedHandlerParams struct {
	fx.In

	FeedUC   usecase.FeedUsecase
	RouterUC usecase.DisplayRouter
	Logger   *slog.Logger
}

// FeedHandler exposes the notification feed to the UI shell.
type FeedHandler struct {
	feedUC   usecase.FeedUsecase
	routerUC usecase.DisplayRouter
	logger   *slog.Logger
}

// NewFeedHandler is the constructor for FeedHandler
func NewFeedHandler(params FeedHandlerParams) *FeedHandler {
	return &FeedHandler{
		feedUC:   params.FeedUC,
		routerUC: params.RouterUC,
		logger:   params.Logger,
	}
}

// GetFeed returns the current feed snapshot.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.feedUC.Snapshot(), "")
}

// Refresh triggers an immediate resynchronization. The fetch runs in the
// background; the updated feed arrives on the next GetFeed.
func (h *FeedHandler) Refresh(c echo.Context) error {
	if err := h.feedUC.Refresh(c.Request().Context()); err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, nil, "Refresh scheduled")
}

// MarkRead flips one notification to read.
func (h *FeedHandler) MarkRead(c echo.Context) error {
	id, err := parseNotificationID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.feedUC.MarkAsRead(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}

// MarkAllRead flips every notification to read.
func (h *FeedHandler) MarkAllRead(c echo.Context) error {
	if err := h.feedUC.MarkAllAsRead(c.Request().Context()); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "All notifications marked as read")
}

// Delete removes one notification from the feed.
func (h *FeedHandler) Delete(c echo.Context) error {
	id, err := parseNotificationID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.feedUC.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted")
}

// GetTarget resolves the navigation target a tap on the notification should
// open.
func (h *FeedHandler) GetTarget(c echo.Context) error {
	id, err := parseNotificationID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	for _, record := range h.feedUC.Snapshot().Records {
		if record.ID != id {
			continue
		}

		return response.Success(c, http.StatusOK, map[string]string{
			"target": h.routerUC.Resolve(record.Type, record.ReferenceID),
		}, "")
	}

	return domainerrors.ErrNotificationNotFound
}

// parseNotificationID reads the :id path parameter. Negative values are
// valid: they address locally synthesized records.
func parseNotificationID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
