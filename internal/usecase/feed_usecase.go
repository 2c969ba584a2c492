// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"voltfeed/internal/domain/entity"
)

// FeedSnapshot is a point-in-time view of the notification feed: the
// deduplicated, ordered records plus the derived state the UI renders.
type FeedSnapshot struct {
	Records []*entity.NotificationRecord `json:"records"`

	// UnreadCount is always derived from Records; it can never drift from
	// the visible list.
	UnreadCount int `json:"unreadCount"`

	// IsLoading is true while the initial fetch for the current identity is
	// still in flight.
	IsLoading bool `json:"isLoading"`

	// LastError carries the most recent sync failure, empty when the last
	// sync succeeded.
	LastError string `json:"lastError"`

	// PushActive reports whether the push channel is delivering. False means
	// the client is running polling-only.
	PushActive bool `json:"pushActive"`
}

// FeedUsecase exposes the notification feed and its mutations. All mutations
// are optimistic: local state changes immediately and backend failures are
// absorbed rather than rolled back.
type FeedUsecase interface {
	// Snapshot returns the current feed view.
	Snapshot() FeedSnapshot

	// MarkAsRead flips one notification to read. Unknown ids are a no-op.
	MarkAsRead(ctx context.Context, id int64) error

	// MarkAllAsRead flips every notification to read. Idempotent.
	MarkAllAsRead(ctx context.Context) error

	// Delete removes one notification from the feed.
	Delete(ctx context.Context, id int64) error

	// Refresh requests an immediate resynchronization with the backend.
	Refresh(ctx context.Context) error
}
