package impl

import (
	"context"
	"log/slog"
	"sync"

	"voltfeed/config"
	"voltfeed/internal/domain/constants"
	"voltfeed/internal/domain/entity"
	"voltfeed/internal/domain/repository"
	"voltfeed/internal/domain/service"
	"voltfeed/internal/errors"
	"voltfeed/internal/usecase"
)

// session is the sync state bound to one authenticated identity.
type session struct {
	userID       int64
	ctx          context.Context
	cancel       context.CancelFunc
	subscription service.Subscription
}

// syncCoordinator ties the sync engine together. It watches identity
// transitions and, for each authenticated identity, opens the push channel
// and runs the polling loop. On logout or identity change the previous
// session is torn down completely before anything starts for the new one.
type syncCoordinator struct {
	logger   *slog.Logger
	store    *FeedStore
	identity service.IdentityProvider
	provider service.PushProvider
	tokens   *TokenManager
	poller   *Poller
	listener *PushListener

	mu        sync.Mutex
	runCancel context.CancelFunc
	runDone   chan struct{}
	session   *session
}

// NewSyncCoordinator creates the sync engine.
func NewSyncCoordinator(
	logger *slog.Logger,
	cfg *config.Config,
	store *FeedStore,
	repo repository.NotificationRepository,
	provider service.PushProvider,
	displayer service.NotificationDisplayer,
	identity service.IdentityProvider,
) usecase.SyncUsecase {
	deviceType := cfg.API.DeviceType
	if deviceType == "" {
		deviceType = constants.DefaultDeviceType
	}

	coordinator := &syncCoordinator{
		logger:   logger,
		store:    store,
		identity: identity,
		provider: provider,
		tokens:   NewTokenManager(logger, provider, repo, deviceType),
		poller:   NewPoller(logger, repo, store, cfg.Sync.PollInterval),
	}
	coordinator.listener = NewPushListener(logger, store, displayer, coordinator.SyncNow)

	return coordinator
}

// Start begins consuming identity transitions. Idempotent.
func (c *syncCoordinator) Start(_ context.Context) error {
	c.mu.Lock()
	if c.runCancel != nil {
		c.mu.Unlock()

		return nil
	}
	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	c.runCancel = cancel
	c.runDone = done
	c.mu.Unlock()

	states, _ := c.identity.Subscribe(runCtx)

	go func() {
		defer close(done)
		for state := range states {
			c.transition(runCtx, state)
		}
	}()

	return nil
}

// Stop tears the engine down, waiting for the transition loop to drain.
func (c *syncCoordinator) Stop(ctx context.Context) error {
	c.mu.Lock()
	cancel := c.runCancel
	done := c.runDone
	c.runCancel = nil
	c.runDone = nil
	c.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "sync engine shutdown")
	}

	c.mu.Lock()
	c.endSessionLocked(ctx)
	c.mu.Unlock()

	return nil
}

// SyncNow triggers an immediate fetch for the active session. No-op when
// nobody is logged in; overlapping requests collapse into the in-flight
// fetch.
func (c *syncCoordinator) SyncNow(_ context.Context) {
	c.mu.Lock()
	sess := c.session
	c.mu.Unlock()

	if sess == nil {
		return
	}

	go c.poller.Sync(sess.ctx, sess.userID)
}

// transition handles one identity change. Teardown always runs before any
// setup for the new identity so a stale push registration or an in-flight
// fetch can never leak across users.
func (c *syncCoordinator) transition(runCtx context.Context, state entity.IdentityState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.endSessionLocked(runCtx)

	if !state.Authenticated {
		c.logger.Info("[Sync] Identity anonymous, engine idle")

		return
	}

	c.logger.Info("[Sync] Starting session",
		slog.Int64("user_id", state.UserID),
	)

	c.store.BeginLoading()

	sessionCtx, cancel := context.WithCancel(runCtx)
	sess := &session{
		userID: state.UserID,
		ctx:    sessionCtx,
		cancel: cancel,
	}
	c.session = sess

	go c.openPushChannel(sessionCtx, sess)
	go c.poller.Run(sessionCtx, state.UserID)
}

// openPushChannel registers the push token and attaches the delivery
// handler. Any failure here degrades to polling-only; the session keeps
// running.
func (c *syncCoordinator) openPushChannel(ctx context.Context, sess *session) {
	if _, err := c.tokens.Register(ctx, sess.userID); err != nil {
		switch {
		case errors.Is(err, ErrPermissionDenied):
			c.logger.Info("[Sync] Notification permission denied, polling-only")
		case errors.Is(err, service.ErrPushUnavailable):
			c.logger.Info("[Sync] Push unavailable, polling-only")
		default:
			c.logger.Warn("[Sync] Push registration failed, polling-only",
				slog.String("error", err.Error()),
			)
		}

		return
	}

	subscription, err := c.provider.Subscribe(ctx, func(payload service.PushPayload) {
		c.listener.Handle(ctx, sess.userID, payload)
	})
	if err != nil {
		c.logger.Warn("[Sync] Push subscribe failed, polling-only",
			slog.String("error", err.Error()),
		)

		return
	}

	c.mu.Lock()
	if c.session != sess {
		// The session ended while the channel was opening.
		c.mu.Unlock()
		subscription.Unsubscribe()

		return
	}
	sess.subscription = subscription
	// Flip inside the lock: a logout racing this point must not leave a
	// cleared store advertising an active push channel.
	c.store.SetPushActive(true)
	c.mu.Unlock()

	c.logger.Info("[Sync] Push channel active",
		slog.Int64("user_id", sess.userID),
	)
}

// endSessionLocked tears down the active session: stop deliveries, revoke
// the token binding, invalidate in-flight fetches, drop the feed. Caller
// holds c.mu.
func (c *syncCoordinator) endSessionLocked(ctx context.Context) {
	sess := c.session
	if sess == nil {
		return
	}
	c.session = nil

	sess.cancel()
	if sess.subscription != nil {
		sess.subscription.Unsubscribe()
	}
	c.tokens.Teardown(ctx)
	c.poller.BumpGeneration()
	c.store.Clear()

	c.logger.Info("[Sync] Session ended",
		slog.Int64("user_id", sess.userID),
	)
}
