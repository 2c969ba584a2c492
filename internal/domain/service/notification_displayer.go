package service

import (
	"context"
)

// NotificationDisplayer requests a native notification surface for an
// incoming delivery. This is a presentation side effect: failures are
// inconsequential and must never be retried.
type NotificationDisplayer interface {
	Display(ctx context.Context, title, body string) error
}
