// Package service defines the interfaces for external collaborators of the
// sync client: the push provider, the identity provider, and presentation
// side effects.
package service

import (
	"context"
	"errors"
)

// Permission is the outcome of a notification permission request.
type Permission string

const (
	// PermissionGranted allows push delivery and native surfaces.
	PermissionGranted Permission = "granted"
	// PermissionDenied disables the push channel. The client falls back to
	// polling-only operation.
	PermissionDenied Permission = "denied"
)

// ErrPushUnavailable is returned when the platform has no usable push
// provider. It is a degradation signal, never a fatal error.
var ErrPushUnavailable = errors.New("push provider unavailable")

// PushPayload is a normalized incoming push delivery: display strings plus
// an arbitrary key-value data map supplied by the sender.
type PushPayload struct {
	Title string
	Body  string
	Data  map[string]string
}

// Subscription is an active message subscription that can be revoked.
type Subscription interface {
	// Unsubscribe detaches the handler. Safe to call more than once.
	Unsubscribe()
}

// PushProvider abstracts the push delivery channel. Implementations must be
// safe for use from multiple goroutines.
type PushProvider interface {
	// RequestPermission prompts for (or looks up) notification permission.
	// Returns ErrPushUnavailable when the platform does not support push.
	RequestPermission(ctx context.Context) (Permission, error)

	// Token acquires the provider-issued delivery token for this client.
	// Returns ErrPushUnavailable when acquisition fails.
	Token(ctx context.Context) (string, error)

	// Subscribe attaches a handler for incoming deliveries. The handler is
	// invoked once per message; delivery stops after Unsubscribe.
	Subscribe(ctx context.Context, handler func(PushPayload)) (Subscription, error)
}
