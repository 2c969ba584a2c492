// Package repository defines the interfaces the client uses to talk to the
// backend notification API. The API plays the role a database would play in
// a server: the authoritative store the client synchronizes against.
package repository

import (
	"context"
	"errors"

	"voltfeed/internal/domain/entity"
)

// Domain-specific errors for the notification API.
var (
	// ErrNotificationNotFound is returned when a notification no longer
	// exists on the backend.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrUnavailable is returned when the backend cannot be reached.
	// Callers treat it as transient and retry on the next scheduled cycle.
	ErrUnavailable = errors.New("notification API unavailable")
)

// NotificationRepository defines the backend operations the sync client
// depends on. All calls are suspension points and honor ctx cancellation.
type NotificationRepository interface {
	// FetchNotifications retrieves the full current notification list for a
	// user, newest first. A backend 404 is treated as an empty feed, not an
	// error.
	FetchNotifications(ctx context.Context, userID int64) ([]*entity.NotificationRecord, error)

	// MarkRead flags a single notification as read on the backend.
	MarkRead(ctx context.Context, id int64) error

	// MarkAllRead flags every notification of a user as read on the backend.
	MarkAllRead(ctx context.Context, userID int64) error

	// DeleteNotification removes a notification on the backend.
	DeleteNotification(ctx context.Context, id int64) error

	// RegisterToken binds a push token to a user, tagged with a device-class
	// label. Idempotent: repeated calls with the same pair are safe.
	RegisterToken(ctx context.Context, userID int64, token, deviceType string) error

	// UnregisterToken removes a push token binding. Best-effort on logout.
	UnregisterToken(ctx context.Context, userID int64, token string) error
}
