package impl

import (
	"testing"
	"time"

	"voltfeed/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id int64, isRead bool) *entity.NotificationRecord {
	return &entity.NotificationRecord{
		ID:        id,
		UserID:    7,
		Title:     "title",
		Message:   "message",
		Type:      entity.TypeSystem,
		IsRead:    isRead,
		CreatedAt: time.Now(),
	}
}

func TestFeedStore_UnreadCountDerivedFromRecords(t *testing.T) {
	store := NewFeedStore()
	store.ApplyFetch([]*entity.NotificationRecord{
		record(1, false),
		record(2, true),
		record(3, false),
	})

	snapshot := store.Snapshot()
	assert.Equal(t, 2, snapshot.UnreadCount)

	store.MarkRead(1)
	assert.Equal(t, 1, store.Snapshot().UnreadCount)

	store.MarkAllRead()
	assert.Equal(t, 0, store.Snapshot().UnreadCount)

	// Marking again must not drive the counter negative.
	store.MarkAllRead()
	assert.Equal(t, 0, store.Snapshot().UnreadCount)
}

func TestFeedStore_UpsertReplacesExistingID(t *testing.T) {
	store := NewFeedStore()
	store.Upsert(record(1, false))
	store.Upsert(record(2, false))

	updated := record(1, false)
	updated.Title = "updated"
	store.Upsert(updated)

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Records, 2)
	assert.Equal(t, 2, snapshot.UnreadCount)

	// The replaced record keeps its original position.
	assert.Equal(t, int64(2), snapshot.Records[0].ID)
	assert.Equal(t, int64(1), snapshot.Records[1].ID)
	assert.Equal(t, "updated", snapshot.Records[1].Title)
}

func TestFeedStore_UpsertPrependsNewRecords(t *testing.T) {
	store := NewFeedStore()
	store.ApplyFetch([]*entity.NotificationRecord{record(1, true)})

	store.Upsert(record(2, false))

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Records, 2)
	assert.Equal(t, int64(2), snapshot.Records[0].ID)
	assert.Equal(t, 1, snapshot.UnreadCount)
}

func TestFeedStore_ApplyFetchPreservesPendingRead(t *testing.T) {
	store := NewFeedStore()
	store.ApplyFetch([]*entity.NotificationRecord{record(1, false)})
	store.MarkRead(1)

	// Backend has not processed the read yet and still reports unread.
	store.ApplyFetch([]*entity.NotificationRecord{record(1, false)})

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Records, 1)
	assert.True(t, snapshot.Records[0].IsRead)
	assert.Equal(t, 0, snapshot.UnreadCount)

	// Once the backend confirms, the pending entry is dropped and the
	// server state passes through untouched.
	store.ApplyFetch([]*entity.NotificationRecord{record(1, true)})
	assert.True(t, store.Snapshot().Records[0].IsRead)
}

func TestFeedStore_ApplyFetchDropsLocalRecords(t *testing.T) {
	store := NewFeedStore()
	localID := store.NextLocalID()
	store.Upsert(record(localID, false))

	// The poll result is authoritative: the reconciled record arrives with
	// its server id and the synthesized one disappears.
	store.ApplyFetch([]*entity.NotificationRecord{record(41, false)})

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Records, 1)
	assert.Equal(t, int64(41), snapshot.Records[0].ID)
}

func TestFeedStore_NextLocalIDIsNegativeAndUnique(t *testing.T) {
	store := NewFeedStore()

	first := store.NextLocalID()
	second := store.NextLocalID()

	assert.Negative(t, first)
	assert.Negative(t, second)
	assert.NotEqual(t, first, second)
	assert.Less(t, second, first)
}

func TestFeedStore_RemoveUnknownIDIsNoop(t *testing.T) {
	store := NewFeedStore()
	store.ApplyFetch([]*entity.NotificationRecord{record(1, false)})

	assert.False(t, store.Remove(99))
	assert.True(t, store.Remove(1))
	assert.Empty(t, store.Snapshot().Records)
}

func TestFeedStore_ClearResetsEverything(t *testing.T) {
	store := NewFeedStore()
	store.BeginLoading()
	store.ApplyFetch([]*entity.NotificationRecord{record(1, false)})
	store.MarkRead(1)
	store.SetPushActive(true)
	store.SetSyncError("boom")

	store.Clear()

	snapshot := store.Snapshot()
	assert.Empty(t, snapshot.Records)
	assert.Equal(t, 0, snapshot.UnreadCount)
	assert.False(t, snapshot.IsLoading)
	assert.Empty(t, snapshot.LastError)
	assert.False(t, snapshot.PushActive)
}

func TestFeedStore_SyncErrorKeepsRecords(t *testing.T) {
	store := NewFeedStore()
	store.ApplyFetch([]*entity.NotificationRecord{record(1, false)})

	store.SetSyncError("backend unreachable")

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Records, 1)
	assert.Equal(t, "backend unreachable", snapshot.LastError)

	// A later successful fetch clears the error.
	store.ApplyFetch([]*entity.NotificationRecord{record(1, false)})
	assert.Empty(t, store.Snapshot().LastError)
}

func TestFeedStore_SnapshotIsACopy(t *testing.T) {
	store := NewFeedStore()
	store.ApplyFetch([]*entity.NotificationRecord{record(1, false)})

	snapshot := store.Snapshot()
	snapshot.Records[0].IsRead = true

	assert.Equal(t, 1, store.Snapshot().UnreadCount)
}
