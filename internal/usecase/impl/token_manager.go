package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"voltfeed/internal/domain/entity"
	"voltfeed/internal/domain/repository"
	"voltfeed/internal/domain/service"
	"voltfeed/internal/errors"

	"golang.org/x/sync/singleflight"
)

// ErrPermissionDenied is returned when the user refused notification
// permission. The client keeps running polling-only.
var ErrPermissionDenied = errors.New("notification permission denied")

const registerKey = "register"

// TokenManager owns the push registration lifecycle: permission, token
// acquisition, backend registration, and teardown. At most one registration
// is active at a time; concurrent Register calls for the same identity
// collapse into a single in-flight attempt.
type TokenManager struct {
	logger     *slog.Logger
	provider   service.PushProvider
	repo       repository.NotificationRepository
	deviceType string

	group singleflight.Group

	mu           sync.Mutex
	registration *entity.PushRegistration
}

// NewTokenManager creates the push registration manager.
func NewTokenManager(
	logger *slog.Logger,
	provider service.PushProvider,
	repo repository.NotificationRepository,
	deviceType string,
) *TokenManager {
	return &TokenManager{
		logger:     logger,
		provider:   provider,
		repo:       repo,
		deviceType: deviceType,
	}
}

// Registration returns the currently active registration, or nil.
func (m *TokenManager) Registration() *entity.PushRegistration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.registration
}

// Register acquires a push token for userID and registers it with the
// backend. A registration held for a different identity is torn down before
// the new one is acquired. Returns ErrPermissionDenied or
// service.ErrPushUnavailable when the push channel cannot be used; both mean
// polling-only operation, not failure.
func (m *TokenManager) Register(ctx context.Context, userID int64) (*entity.PushRegistration, error) {
	result, err, _ := m.group.Do(registerKey, func() (any, error) {
		return m.register(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	registration, _ := result.(*entity.PushRegistration)

	return registration, nil
}

func (m *TokenManager) register(ctx context.Context, userID int64) (*entity.PushRegistration, error) {
	m.mu.Lock()
	current := m.registration
	m.mu.Unlock()

	if current != nil {
		if current.OwnerUserID == userID {
			return current, nil
		}
		// Stale registration from the previous identity: tear down first so
		// the old binding can never receive the new user's deliveries.
		m.teardown(ctx, current)
	}

	permission, err := m.provider.RequestPermission(ctx)
	if err != nil {
		return nil, errors.Wrap(service.ErrPushUnavailable, err.Error())
	}
	if permission != service.PermissionGranted {
		return nil, ErrPermissionDenied
	}

	token, err := m.provider.Token(ctx)
	if err != nil {
		return nil, errors.Wrap(service.ErrPushUnavailable, err.Error())
	}

	if err := m.repo.RegisterToken(ctx, userID, token, m.deviceType); err != nil {
		return nil, errors.Wrap(err, "register push token")
	}

	registration := &entity.PushRegistration{
		Token:       token,
		OwnerUserID: userID,
		DeviceType:  m.deviceType,
		CreatedAt:   time.Now(),
	}

	m.mu.Lock()
	m.registration = registration
	m.mu.Unlock()

	m.logger.Info("[Push] Token registered",
		slog.Int64("user_id", userID),
		slog.String("device_type", m.deviceType),
	)

	return registration, nil
}

// Teardown removes the active registration. Best-effort: a backend failure
// is logged, not returned, so logout never blocks on the network.
func (m *TokenManager) Teardown(ctx context.Context) {
	m.mu.Lock()
	current := m.registration
	m.mu.Unlock()

	if current == nil {
		return
	}
	m.teardown(ctx, current)
}

func (m *TokenManager) teardown(ctx context.Context, registration *entity.PushRegistration) {
	if err := m.repo.UnregisterToken(ctx, registration.OwnerUserID, registration.Token); err != nil {
		m.logger.Warn("[Push] Token unregister failed",
			slog.Int64("user_id", registration.OwnerUserID),
			slog.String("error", err.Error()),
		)
	}

	m.mu.Lock()
	if m.registration == registration {
		m.registration = nil
	}
	m.mu.Unlock()
}
