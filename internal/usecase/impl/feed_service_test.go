package impl

import (
	"context"
	"testing"

	"voltfeed/internal/domain/entity"
	"voltfeed/internal/domain/repository"
	mockRepo "voltfeed/internal/mocks/repository"
	mockSvc "voltfeed/internal/mocks/service"
	"voltfeed/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSync struct {
	syncs int
}

func (f *fakeSync) Start(context.Context) error { return nil }
func (f *fakeSync) Stop(context.Context) error  { return nil }
func (f *fakeSync) SyncNow(context.Context)     { f.syncs++ }

func createTestFeedService(t *testing.T) (
	usecase.FeedUsecase,
	*FeedStore,
	*mockRepo.MockNotificationRepository,
	*mockSvc.MockIdentityProvider,
	*fakeSync,
) {
	store := NewFeedStore()
	repo := mockRepo.NewMockNotificationRepository(t)
	identity := mockSvc.NewMockIdentityProvider(t)
	sync := &fakeSync{}
	service := NewFeedService(testLogger(), store, repo, identity, sync)

	return service, store, repo, identity, sync
}

func TestFeedService_MarkAsReadWritesThrough(t *testing.T) {
	service, store, repo, _, _ := createTestFeedService(t)
	ctx := context.Background()

	store.ApplyFetch([]*entity.NotificationRecord{record(1, false)})

	repo.EXPECT().MarkRead(ctx, int64(1)).Return(nil)

	require.NoError(t, service.MarkAsRead(ctx, 1))
	assert.Equal(t, 0, service.Snapshot().UnreadCount)
}

func TestFeedService_MarkAsReadSurvivesBackendFailure(t *testing.T) {
	service, store, repo, _, _ := createTestFeedService(t)
	ctx := context.Background()

	store.ApplyFetch([]*entity.NotificationRecord{record(1, false)})

	repo.EXPECT().MarkRead(ctx, int64(1)).Return(repository.ErrUnavailable)

	// The local flip sticks even though the backend write failed.
	require.NoError(t, service.MarkAsRead(ctx, 1))
	assert.True(t, service.Snapshot().Records[0].IsRead)
	assert.Equal(t, 0, service.Snapshot().UnreadCount)
}

func TestFeedService_MarkAsReadUnknownIDIsNoop(t *testing.T) {
	service, _, _, _, _ := createTestFeedService(t)

	// No repository expectation: nothing may reach the backend.
	require.NoError(t, service.MarkAsRead(context.Background(), 99))
}

func TestFeedService_MarkAsReadLocalRecordSkipsBackend(t *testing.T) {
	service, store, _, _, _ := createTestFeedService(t)
	ctx := context.Background()

	localID := store.NextLocalID()
	store.Upsert(record(localID, false))

	// A synthesized record has no server id to write yet.
	require.NoError(t, service.MarkAsRead(ctx, localID))
	assert.Equal(t, 0, service.Snapshot().UnreadCount)
}

func TestFeedService_MarkAllAsRead(t *testing.T) {
	service, store, repo, identity, _ := createTestFeedService(t)
	ctx := context.Background()

	store.ApplyFetch([]*entity.NotificationRecord{
		record(1, false),
		record(2, false),
		record(3, true),
	})

	identity.EXPECT().Current().Return(entity.IdentityState{UserID: 7, Authenticated: true})
	repo.EXPECT().MarkAllRead(ctx, int64(7)).Return(nil)

	require.NoError(t, service.MarkAllAsRead(ctx))
	assert.Equal(t, 0, service.Snapshot().UnreadCount)
}

func TestFeedService_MarkAllAsReadAnonymousSkipsBackend(t *testing.T) {
	service, store, _, identity, _ := createTestFeedService(t)

	store.Upsert(record(store.NextLocalID(), false))
	identity.EXPECT().Current().Return(entity.Anonymous)

	require.NoError(t, service.MarkAllAsRead(context.Background()))
	assert.Equal(t, 0, service.Snapshot().UnreadCount)
}

func TestFeedService_DeleteRemovesLocallyDespiteBackendFailure(t *testing.T) {
	service, store, repo, _, _ := createTestFeedService(t)
	ctx := context.Background()

	store.ApplyFetch([]*entity.NotificationRecord{record(1, false)})

	repo.EXPECT().DeleteNotification(ctx, int64(1)).Return(repository.ErrUnavailable)

	require.NoError(t, service.Delete(ctx, 1))
	assert.Empty(t, service.Snapshot().Records)
}

func TestFeedService_RefreshDelegatesToSync(t *testing.T) {
	service, _, _, _, sync := createTestFeedService(t)

	require.NoError(t, service.Refresh(context.Background()))
	assert.Equal(t, 1, sync.syncs)
}
