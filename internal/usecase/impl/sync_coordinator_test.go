package impl

import (
	"context"
	"testing"
	"time"

	"voltfeed/config"
	"voltfeed/internal/domain/entity"
	"voltfeed/internal/domain/service"
	mockRepo "voltfeed/internal/mocks/repository"
	mockSvc "voltfeed/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func waitSignal(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestSyncCoordinator_LoginThenLogout(t *testing.T) {
	store := NewFeedStore()
	repo := mockRepo.NewMockNotificationRepository(t)
	provider := mockSvc.NewMockPushProvider(t)
	displayer := mockSvc.NewMockNotificationDisplayer(t)
	identity := mockSvc.NewMockIdentityProvider(t)
	subscription := mockSvc.NewMockSubscription(t)

	cfg := &config.Config{}
	cfg.Sync.PollInterval = time.Hour
	cfg.API.DeviceType = "web"

	states := make(chan entity.IdentityState, 4)
	identity.EXPECT().Subscribe(mock.Anything).Return((<-chan entity.IdentityState)(states), func() {})

	fetched := make(chan struct{}, 4)
	repo.EXPECT().FetchNotifications(mock.Anything, int64(7)).
		RunAndReturn(func(context.Context, int64) ([]*entity.NotificationRecord, error) {
			defer func() { fetched <- struct{}{} }()

			return []*entity.NotificationRecord{record(10, false)}, nil
		})

	subscribed := make(chan struct{}, 1)
	provider.EXPECT().RequestPermission(mock.Anything).Return(service.PermissionGranted, nil)
	provider.EXPECT().Token(mock.Anything).Return("token-a", nil)
	repo.EXPECT().RegisterToken(mock.Anything, int64(7), "token-a", "web").Return(nil)
	provider.EXPECT().Subscribe(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, func(service.PushPayload)) (service.Subscription, error) {
			defer close(subscribed)

			return subscription, nil
		})

	coordinator := NewSyncCoordinator(testLogger(), cfg, store, repo, provider, displayer, identity)
	require.NoError(t, coordinator.Start(context.Background()))

	states <- entity.IdentityState{UserID: 7, Authenticated: true}

	waitSignal(t, fetched, "initial fetch")
	waitSignal(t, subscribed, "push subscription")

	assert.Eventually(t, func() bool {
		snapshot := store.Snapshot()

		return len(snapshot.Records) == 1 && snapshot.PushActive
	}, 2*time.Second, 10*time.Millisecond)

	// Logout tears everything down: the subscription, the token binding,
	// and the feed itself.
	unregistered := make(chan struct{}, 1)
	subscription.EXPECT().Unsubscribe()
	repo.EXPECT().UnregisterToken(mock.Anything, int64(7), "token-a").
		RunAndReturn(func(context.Context, int64, string) error {
			defer close(unregistered)

			return nil
		})

	states <- entity.Anonymous

	waitSignal(t, unregistered, "token unregister")

	assert.Eventually(t, func() bool {
		snapshot := store.Snapshot()

		return len(snapshot.Records) == 0 && !snapshot.PushActive
	}, 2*time.Second, 10*time.Millisecond)

	close(states)
	require.NoError(t, coordinator.Stop(context.Background()))
}

func TestSyncCoordinator_PermissionDeniedRunsPollingOnly(t *testing.T) {
	store := NewFeedStore()
	repo := mockRepo.NewMockNotificationRepository(t)
	provider := mockSvc.NewMockPushProvider(t)
	displayer := mockSvc.NewMockNotificationDisplayer(t)
	identity := mockSvc.NewMockIdentityProvider(t)

	cfg := &config.Config{}
	cfg.Sync.PollInterval = time.Hour

	states := make(chan entity.IdentityState, 4)
	identity.EXPECT().Subscribe(mock.Anything).Return((<-chan entity.IdentityState)(states), func() {})

	fetched := make(chan struct{}, 4)
	repo.EXPECT().FetchNotifications(mock.Anything, int64(7)).
		RunAndReturn(func(context.Context, int64) ([]*entity.NotificationRecord, error) {
			defer func() { fetched <- struct{}{} }()

			return []*entity.NotificationRecord{record(10, false)}, nil
		})

	denied := make(chan struct{}, 1)
	provider.EXPECT().RequestPermission(mock.Anything).
		RunAndReturn(func(context.Context) (service.Permission, error) {
			defer close(denied)

			return service.PermissionDenied, nil
		})

	coordinator := NewSyncCoordinator(testLogger(), cfg, store, repo, provider, displayer, identity)
	require.NoError(t, coordinator.Start(context.Background()))

	states <- entity.IdentityState{UserID: 7, Authenticated: true}

	waitSignal(t, fetched, "initial fetch")
	waitSignal(t, denied, "permission request")

	// Polling still works; the push channel never came up.
	assert.Eventually(t, func() bool {
		return len(store.Snapshot().Records) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.False(t, store.Snapshot().PushActive)

	close(states)
	require.NoError(t, coordinator.Stop(context.Background()))
}

func TestSyncCoordinator_LogoutWhileChannelOpening(t *testing.T) {
	store := NewFeedStore()
	repo := mockRepo.NewMockNotificationRepository(t)
	provider := mockSvc.NewMockPushProvider(t)
	displayer := mockSvc.NewMockNotificationDisplayer(t)
	identity := mockSvc.NewMockIdentityProvider(t)
	subscription := mockSvc.NewMockSubscription(t)

	cfg := &config.Config{}
	cfg.Sync.PollInterval = time.Hour
	cfg.API.DeviceType = "web"

	states := make(chan entity.IdentityState, 4)
	identity.EXPECT().Subscribe(mock.Anything).Return((<-chan entity.IdentityState)(states), func() {})

	repo.EXPECT().FetchNotifications(mock.Anything, int64(7)).
		Return([]*entity.NotificationRecord{record(10, false)}, nil).Maybe()

	provider.EXPECT().RequestPermission(mock.Anything).Return(service.PermissionGranted, nil)
	provider.EXPECT().Token(mock.Anything).Return("token-a", nil)
	repo.EXPECT().RegisterToken(mock.Anything, int64(7), "token-a", "web").Return(nil)

	// Subscribe stalls until the logout has fully torn the session down.
	subscribing := make(chan struct{})
	release := make(chan struct{})
	provider.EXPECT().Subscribe(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, func(service.PushPayload)) (service.Subscription, error) {
			close(subscribing)
			<-release

			return subscription, nil
		})

	coordinator := NewSyncCoordinator(testLogger(), cfg, store, repo, provider, displayer, identity)
	require.NoError(t, coordinator.Start(context.Background()))

	states <- entity.IdentityState{UserID: 7, Authenticated: true}
	waitSignal(t, subscribing, "subscribe attempt")

	unregistered := make(chan struct{}, 1)
	repo.EXPECT().UnregisterToken(mock.Anything, int64(7), "token-a").
		RunAndReturn(func(context.Context, int64, string) error {
			defer close(unregistered)

			return nil
		})

	states <- entity.Anonymous
	waitSignal(t, unregistered, "token unregister")

	// The late subscription is discarded, not adopted: it gets unsubscribed
	// and the cleared store never reports an active push channel.
	unsubscribed := make(chan struct{}, 1)
	subscription.EXPECT().Unsubscribe().Run(func() { close(unsubscribed) })

	close(release)
	waitSignal(t, unsubscribed, "late unsubscribe")

	assert.Eventually(t, func() bool {
		snapshot := store.Snapshot()

		return len(snapshot.Records) == 0 && !snapshot.PushActive
	}, 2*time.Second, 10*time.Millisecond)

	close(states)
	require.NoError(t, coordinator.Stop(context.Background()))
}

func TestSyncCoordinator_SyncNowWithoutSessionIsNoop(t *testing.T) {
	store := NewFeedStore()
	repo := mockRepo.NewMockNotificationRepository(t)
	provider := mockSvc.NewMockPushProvider(t)
	displayer := mockSvc.NewMockNotificationDisplayer(t)
	identity := mockSvc.NewMockIdentityProvider(t)

	cfg := &config.Config{}
	cfg.Sync.PollInterval = time.Hour

	coordinator := NewSyncCoordinator(testLogger(), cfg, store, repo, provider, displayer, identity)

	// Never started, nobody logged in: no repository call may happen.
	coordinator.SyncNow(context.Background())
}
