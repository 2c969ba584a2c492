package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"voltfeed/internal/domain/repository"
)

// Poller drives the fixed-interval full-state fetch. It is the reconciliation
// path: push deliveries only hint at changes, the poll result is
// authoritative.
//
// At most one fetch is in flight at a time; ticks and on-demand syncs that
// arrive while a fetch runs are skipped, not queued. A generation counter
// guards against a response from a previous identity landing after a
// login change.
type Poller struct {
	logger   *slog.Logger
	repo     repository.NotificationRepository
	store    *FeedStore
	interval time.Duration

	inFlight   atomic.Bool
	generation atomic.Int64
}

// NewPoller creates the polling synchronizer.
func NewPoller(logger *slog.Logger, repo repository.NotificationRepository, store *FeedStore, interval time.Duration) *Poller {
	return &Poller{
		logger:   logger,
		repo:     repo,
		store:    store,
		interval: interval,
	}
}

// BumpGeneration invalidates fetches started before the call. The sync
// coordinator bumps it on every identity transition so a stale response can
// never be applied to the new user's feed.
func (p *Poller) BumpGeneration() {
	p.generation.Add(1)
}

// Run fetches immediately, then on every tick, until ctx ends.
func (p *Poller) Run(ctx context.Context, userID int64) {
	p.Sync(ctx, userID)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Sync(ctx, userID)
		}
	}
}

// Sync performs one full-state fetch. Returns immediately when a fetch is
// already in flight.
func (p *Poller) Sync(ctx context.Context, userID int64) {
	if !p.inFlight.CompareAndSwap(false, true) {
		return
	}
	defer p.inFlight.Store(false)

	generation := p.generation.Load()

	records, err := p.repo.FetchNotifications(ctx, userID)

	// The identity changed while the fetch was running; this result belongs
	// to the previous user.
	if p.generation.Load() != generation {
		p.logger.Debug("[Sync] Discarding stale fetch result",
			slog.Int64("user_id", userID),
		)

		return
	}

	if err != nil {
		p.logger.Warn("[Sync] Fetch failed, keeping current feed",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
		p.store.SetSyncError(err.Error())

		return
	}

	p.store.ApplyFetch(records)
}
