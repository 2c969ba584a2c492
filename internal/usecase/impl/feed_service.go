package impl

import (
	"context"
	"log/slog"

	"voltfeed/internal/domain/repository"
	"voltfeed/internal/domain/service"
	"voltfeed/internal/usecase"
)

// feedService exposes the feed and its mutations. Mutations are optimistic:
// the local flip happens first and always sticks; the backend write is
// attempted afterwards and its failure is logged, never rolled back. The
// pending-read bookkeeping in the store keeps the local intent alive until
// a later sync or retry converges.
type feedService struct {
	logger   *slog.Logger
	store    *FeedStore
	repo     repository.NotificationRepository
	identity service.IdentityProvider
	sync     usecase.SyncUsecase
}

// NewFeedService creates the feed use case.
func NewFeedService(
	logger *slog.Logger,
	store *FeedStore,
	repo repository.NotificationRepository,
	identity service.IdentityProvider,
	sync usecase.SyncUsecase,
) usecase.FeedUsecase {
	return &feedService{
		logger:   logger,
		store:    store,
		repo:     repo,
		identity: identity,
		sync:     sync,
	}
}

func (s *feedService) Snapshot() usecase.FeedSnapshot {
	return s.store.Snapshot()
}

// MarkAsRead flips one notification to read. Records that only exist
// locally (negative id) have nothing to write to the backend yet; the next
// poll reconciles them.
func (s *feedService) MarkAsRead(ctx context.Context, id int64) error {
	if !s.store.MarkRead(id) {
		return nil
	}

	if id > 0 {
		if err := s.repo.MarkRead(ctx, id); err != nil {
			s.logger.Warn("[Feed] Backend mark-read failed, keeping local state",
				slog.Int64("notification_id", id),
				slog.String("error", err.Error()),
			)
		}
	}

	return nil
}

func (s *feedService) MarkAllAsRead(ctx context.Context) error {
	s.store.MarkAllRead()

	state := s.identity.Current()
	if !state.Authenticated {
		return nil
	}

	if err := s.repo.MarkAllRead(ctx, state.UserID); err != nil {
		s.logger.Warn("[Feed] Backend mark-all-read failed, keeping local state",
			slog.Int64("user_id", state.UserID),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// Delete removes the notification locally at once. If the backend delete
// fails, the record may reappear on the next poll.
func (s *feedService) Delete(ctx context.Context, id int64) error {
	if !s.store.Remove(id) {
		return nil
	}

	if id > 0 {
		if err := s.repo.DeleteNotification(ctx, id); err != nil {
			s.logger.Warn("[Feed] Backend delete failed",
				slog.Int64("notification_id", id),
				slog.String("error", err.Error()),
			)
		}
	}

	return nil
}

func (s *feedService) Refresh(ctx context.Context) error {
	s.sync.SyncNow(ctx)

	return nil
}
