package service

import (
	"context"
)

// NotificationSender sends a push notification to a single delivery token.
// The client uses it only for config-gated loopback test sends that
// exercise the full push path end-to-end.
type NotificationSender interface {
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
