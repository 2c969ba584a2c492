// Package notify implements the native display surface.
package notify

import (
	"context"
	"log/slog"

	"voltfeed/internal/domain/service"
)

// slogDisplayer renders incoming deliveries to the structured log. The
// daemon has no desktop surface of its own; a platform shell tails this
// stream to raise its native notification.
type slogDisplayer struct {
	logger *slog.Logger
}

// NewSlogDisplayer creates the log-backed notification displayer.
func NewSlogDisplayer(logger *slog.Logger) service.NotificationDisplayer {
	return &slogDisplayer{logger: logger}
}

func (d *slogDisplayer) Display(_ context.Context, title, body string) error {
	d.logger.Info("[Display] Notification surfaced",
		slog.String("title", title),
		slog.String("body", body),
	)

	return nil
}
