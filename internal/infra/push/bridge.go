package push

import (
	"context"
	"log/slog"
	"sync"

	"voltfeed/internal/domain/service"

	"github.com/google/uuid"
)

// Bridge is an in-process push provider fed by the local push-ingress HTTP
// server. It fans incoming deliveries out to subscribed handlers, standing in
// for a platform push service during development.
type Bridge struct {
	logger     *slog.Logger
	permission service.Permission
	token      string

	mu       sync.RWMutex
	handlers map[string]func(service.PushPayload)
}

// NewBridge creates a local push bridge. The delivery token is minted once
// per process so repeated acquisitions are stable.
func NewBridge(logger *slog.Logger, permission service.Permission) *Bridge {
	return &Bridge{
		logger:     logger,
		permission: permission,
		token:      "local-" + uuid.NewString(),
		handlers:   make(map[string]func(service.PushPayload)),
	}
}

func (b *Bridge) RequestPermission(_ context.Context) (service.Permission, error) {
	return b.permission, nil
}

func (b *Bridge) Token(_ context.Context) (string, error) {
	if b.permission != service.PermissionGranted {
		return "", service.ErrPushUnavailable
	}

	return b.token, nil
}

func (b *Bridge) Subscribe(_ context.Context, handler func(service.PushPayload)) (service.Subscription, error) {
	id := uuid.NewString()

	b.mu.Lock()
	b.handlers[id] = handler
	b.mu.Unlock()

	return &bridgeSubscription{bridge: b, id: id}, nil
}

// Dispatch delivers a payload to every active subscriber. Called by the
// push-ingress handler.
func (b *Bridge) Dispatch(payload service.PushPayload) {
	b.mu.RLock()
	handlers := make([]func(service.PushPayload), 0, len(b.handlers))
	for _, handler := range b.handlers {
		handlers = append(handlers, handler)
	}
	b.mu.RUnlock()

	b.logger.Debug("[Push] Dispatching local delivery",
		slog.String("title", payload.Title),
		slog.Int("subscriber_count", len(handlers)),
	)

	for _, handler := range handlers {
		handler(payload)
	}
}

type bridgeSubscription struct {
	bridge *Bridge
	id     string
	once   sync.Once
}

func (s *bridgeSubscription) Unsubscribe() {
	s.once.Do(func() {
		s.bridge.mu.Lock()
		delete(s.bridge.handlers, s.id)
		s.bridge.mu.Unlock()
	})
}
