package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"voltfeed/internal/domain/entity"
	"voltfeed/internal/domain/repository"
	mockRepo "voltfeed/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestPoller_SyncAppliesFetchedRecords(t *testing.T) {
	repo := mockRepo.NewMockNotificationRepository(t)
	store := NewFeedStore()
	poller := NewPoller(testLogger(), repo, store, time.Minute)

	ctx := context.Background()
	repo.EXPECT().FetchNotifications(ctx, int64(7)).Return([]*entity.NotificationRecord{
		record(1, false),
		record(2, true),
	}, nil)

	store.BeginLoading()
	poller.Sync(ctx, 7)

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Records, 2)
	assert.Equal(t, 1, snapshot.UnreadCount)
	assert.False(t, snapshot.IsLoading)
}

func TestPoller_SyncFailureKeepsFeedAndRecordsError(t *testing.T) {
	repo := mockRepo.NewMockNotificationRepository(t)
	store := NewFeedStore()
	poller := NewPoller(testLogger(), repo, store, time.Minute)

	ctx := context.Background()
	store.ApplyFetch([]*entity.NotificationRecord{record(1, false)})

	repo.EXPECT().FetchNotifications(ctx, int64(7)).Return(nil, repository.ErrUnavailable)

	poller.Sync(ctx, 7)

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Records, 1)
	assert.NotEmpty(t, snapshot.LastError)
}

func TestPoller_OverlappingSyncsCollapse(t *testing.T) {
	repo := mockRepo.NewMockNotificationRepository(t)
	store := NewFeedStore()
	poller := NewPoller(testLogger(), repo, store, time.Minute)

	ctx := context.Background()
	release := make(chan struct{})
	started := make(chan struct{})

	repo.EXPECT().FetchNotifications(ctx, int64(7)).
		RunAndReturn(func(context.Context, int64) ([]*entity.NotificationRecord, error) {
			close(started)
			<-release

			return []*entity.NotificationRecord{record(1, false)}, nil
		}).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		poller.Sync(ctx, 7)
	}()

	<-started
	// These arrive while the first fetch is in flight and must be skipped,
	// not queued: the mock allows exactly one call.
	poller.Sync(ctx, 7)
	poller.Sync(ctx, 7)

	close(release)
	wg.Wait()

	assert.Len(t, store.Snapshot().Records, 1)
}

func TestPoller_StaleResultDiscardedAfterGenerationBump(t *testing.T) {
	repo := mockRepo.NewMockNotificationRepository(t)
	store := NewFeedStore()
	poller := NewPoller(testLogger(), repo, store, time.Minute)

	ctx := context.Background()
	repo.EXPECT().FetchNotifications(ctx, int64(7)).
		RunAndReturn(func(context.Context, int64) ([]*entity.NotificationRecord, error) {
			// The identity changes while this fetch is running.
			poller.BumpGeneration()

			return []*entity.NotificationRecord{record(1, false)}, nil
		})

	poller.Sync(ctx, 7)

	assert.Empty(t, store.Snapshot().Records)
}

func TestPoller_RunFetchesImmediatelyThenOnTicks(t *testing.T) {
	repo := mockRepo.NewMockNotificationRepository(t)
	store := NewFeedStore()
	poller := NewPoller(testLogger(), repo, store, 10*time.Millisecond)

	calls := make(chan struct{}, 16)
	repo.EXPECT().FetchNotifications(mock.Anything, int64(7)).
		RunAndReturn(func(context.Context, int64) ([]*entity.NotificationRecord, error) {
			calls <- struct{}{}

			return nil, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		poller.Run(ctx, 7)
	}()

	// First fetch happens before the first tick.
	select {
	case <-calls:
	case <-time.After(time.Second):
		t.Fatal("expected an immediate fetch")
	}

	// Then at least one tick-driven fetch.
	select {
	case <-calls:
	case <-time.After(time.Second):
		t.Fatal("expected a tick-driven fetch")
	}

	cancel()
	<-done
}
