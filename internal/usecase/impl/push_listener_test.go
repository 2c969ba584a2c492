package impl

import (
	"context"
	"sync/atomic"
	"testing"

	"voltfeed/internal/domain/entity"
	"voltfeed/internal/domain/service"
	"voltfeed/internal/errors"
	mockSvc "voltfeed/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPushListener(t *testing.T) (*PushListener, *FeedStore, *mockSvc.MockNotificationDisplayer, *atomic.Int32) {
	store := NewFeedStore()
	displayer := mockSvc.NewMockNotificationDisplayer(t)
	resyncs := &atomic.Int32{}
	listener := NewPushListener(testLogger(), store, displayer, func(context.Context) {
		resyncs.Add(1)
	})

	return listener, store, displayer, resyncs
}

func TestPushListener_FullPayloadPrependsUnread(t *testing.T) {
	listener, store, displayer, resyncs := createTestPushListener(t)
	ctx := context.Background()

	store.ApplyFetch([]*entity.NotificationRecord{record(1, true)})

	displayer.EXPECT().Display(ctx, "Charging complete", "Your session finished").Return(nil)

	listener.Handle(ctx, 7, service.PushPayload{
		Title: "Charging complete",
		Body:  "Your session finished",
		Data: map[string]string{
			"notificationId": "42",
			"type":           "charging_complete",
			"referenceId":    "9001",
		},
	})

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Records, 2)

	inserted := snapshot.Records[0]
	assert.Equal(t, int64(42), inserted.ID)
	assert.Equal(t, int64(7), inserted.UserID)
	assert.Equal(t, entity.TypeChargingComplete, inserted.Type)
	require.NotNil(t, inserted.ReferenceID)
	assert.Equal(t, int64(9001), *inserted.ReferenceID)
	assert.False(t, inserted.IsRead)
	assert.Equal(t, 1, snapshot.UnreadCount)
	assert.Equal(t, int32(1), resyncs.Load())
}

func TestPushListener_SparsePayloadGetsDefaults(t *testing.T) {
	listener, store, displayer, _ := createTestPushListener(t)
	ctx := context.Background()

	displayer.EXPECT().Display(ctx, "Hello", "").Return(nil)

	listener.Handle(ctx, 7, service.PushPayload{
		Title: "Hello",
		Data:  map[string]string{},
	})

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Records, 1)

	inserted := snapshot.Records[0]
	assert.Negative(t, inserted.ID)
	assert.True(t, inserted.IsLocal())
	assert.Equal(t, entity.TypeSystem, inserted.Type)
	assert.Nil(t, inserted.ReferenceID)
	assert.False(t, inserted.IsRead)
	assert.False(t, inserted.CreatedAt.IsZero())
}

func TestPushListener_UnknownTypeFallsBackToSystem(t *testing.T) {
	listener, store, displayer, _ := createTestPushListener(t)
	ctx := context.Background()

	displayer.EXPECT().Display(ctx, "t", "b").Return(nil)

	listener.Handle(ctx, 7, service.PushPayload{
		Title: "t",
		Body:  "b",
		Data:  map[string]string{"type": "flash_sale"},
	})

	assert.Equal(t, entity.TypeSystem, store.Snapshot().Records[0].Type)
}

func TestPushListener_RedeliveryDoesNotDuplicate(t *testing.T) {
	listener, store, displayer, resyncs := createTestPushListener(t)
	ctx := context.Background()

	payload := service.PushPayload{
		Title: "t",
		Body:  "b",
		Data:  map[string]string{"notificationId": "42"},
	}

	displayer.EXPECT().Display(ctx, "t", "b").Return(nil).Twice()

	listener.Handle(ctx, 7, payload)
	listener.Handle(ctx, 7, payload)

	snapshot := store.Snapshot()
	assert.Len(t, snapshot.Records, 1)
	assert.Equal(t, 1, snapshot.UnreadCount)
	assert.Equal(t, int32(2), resyncs.Load())
}

func TestPushListener_DisplayFailureKeepsRecord(t *testing.T) {
	listener, store, displayer, resyncs := createTestPushListener(t)
	ctx := context.Background()

	displayer.EXPECT().Display(ctx, "t", "b").Return(errors.New("surface gone"))

	listener.Handle(ctx, 7, service.PushPayload{Title: "t", Body: "b"})

	assert.Len(t, store.Snapshot().Records, 1)
	assert.Equal(t, int32(1), resyncs.Load())
}
