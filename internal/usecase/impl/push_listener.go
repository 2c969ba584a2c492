package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"voltfeed/internal/domain/entity"
	"voltfeed/internal/domain/service"
)

// Push payload data keys set by the backend sender.
const (
	dataKeyNotificationID = "notificationId"
	dataKeyType           = "type"
	dataKeyReferenceID    = "referenceId"
)

// PushListener turns raw push deliveries into feed records. Every payload is
// normalized into a full NotificationRecord: missing ids get a synthesized
// local id, unknown categories fall back to the system type, and the record
// always lands unread at the head of the feed.
//
// A push is a hint, not the truth: after inserting, the listener requests an
// out-of-band sync so the authoritative backend state reconciles whatever
// the payload carried.
type PushListener struct {
	logger    *slog.Logger
	store     *FeedStore
	displayer service.NotificationDisplayer
	resync    func(context.Context)
}

// NewPushListener creates the push delivery handler. resync is invoked after
// each accepted delivery.
func NewPushListener(
	logger *slog.Logger,
	store *FeedStore,
	displayer service.NotificationDisplayer,
	resync func(context.Context),
) *PushListener {
	return &PushListener{
		logger:    logger,
		store:     store,
		displayer: displayer,
		resync:    resync,
	}
}

// Handle processes one incoming delivery for the given user.
func (l *PushListener) Handle(ctx context.Context, userID int64, payload service.PushPayload) {
	record := l.normalize(userID, payload)

	l.store.Upsert(record)

	l.logger.Info("[Push] Delivery inserted",
		slog.Int64("notification_id", record.ID),
		slog.String("type", string(record.Type)),
		slog.Bool("local_id", record.IsLocal()),
	)

	// Surface the native notification. Presentation failures are logged and
	// forgotten; the record is already in the feed.
	if err := l.displayer.Display(ctx, record.Title, record.Message); err != nil {
		l.logger.Warn("[Push] Display failed",
			slog.Int64("notification_id", record.ID),
			slog.String("error", err.Error()),
		)
	}

	l.resync(ctx)
}

// normalize builds a complete feed record from whatever the payload carried.
func (l *PushListener) normalize(userID int64, payload service.PushPayload) *entity.NotificationRecord {
	record := &entity.NotificationRecord{
		UserID:    userID,
		Title:     payload.Title,
		Message:   payload.Body,
		Type:      entity.ParseNotificationType(payload.Data[dataKeyType]),
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	if id, err := strconv.ParseInt(payload.Data[dataKeyNotificationID], 10, 64); err == nil && id > 0 {
		record.ID = id
	} else {
		record.ID = l.store.NextLocalID()
	}

	if ref, err := strconv.ParseInt(payload.Data[dataKeyReferenceID], 10, 64); err == nil {
		record.ReferenceID = &ref
	}

	return record
}
