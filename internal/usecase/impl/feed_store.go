// Package impl contains the use case implementations.
package impl

import (
	"sync"
	"time"

	"voltfeed/internal/domain/entity"
	"voltfeed/internal/usecase"
)

// FeedStore is the single in-memory source of truth for the notification
// feed. All reads and writes go through it; the unread counter is always
// derived from the stored records so it can never drift from the list.
//
// Records are kept newest first. Server records carry positive ids; records
// synthesized from push deliveries before the backend assigned an id carry
// negative local ids until a poll reconciles them.
type FeedStore struct {
	mu      sync.RWMutex
	records []*entity.NotificationRecord

	// pendingRead holds ids the user marked read locally that the backend
	// has not yet confirmed. A fetch that still reports such an id as unread
	// does not resurrect the unread state.
	pendingRead map[int64]struct{}

	isLoading  bool
	lastError  string
	pushActive bool

	// nextLocalID descends from a millisecond-timestamp seed so local ids
	// stay unique across restarts and can never collide with server ids.
	nextLocalID int64
}

// NewFeedStore creates an empty feed store.
func NewFeedStore() *FeedStore {
	return &FeedStore{
		pendingRead: make(map[int64]struct{}),
		nextLocalID: -time.Now().UnixMilli(),
	}
}

// NextLocalID mints the next synthesized id. Always negative.
func (s *FeedStore) NextLocalID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextLocalID
	s.nextLocalID--

	return id
}

// Upsert inserts a record at the head of the feed. If a record with the same
// id already exists it is replaced in place instead, so a redelivered push
// can never duplicate an entry.
func (s *FeedStore) Upsert(record *entity.NotificationRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.records {
		if existing.ID == record.ID {
			s.records[i] = record

			return
		}
	}

	s.records = append([]*entity.NotificationRecord{record}, s.records...)
}

// ApplyFetch replaces the feed with the authoritative backend list. Local
// read intent survives the replacement: a fetched record still reported
// unread keeps its locally-read state while the id stays pending; once the
// backend reports it read, the pending entry is dropped.
func (s *FeedStore) ApplyFetch(records []*entity.NotificationRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range records {
		if _, pending := s.pendingRead[record.ID]; !pending {
			continue
		}
		if record.IsRead {
			delete(s.pendingRead, record.ID)
		} else {
			record.IsRead = true
		}
	}

	s.records = records
	s.isLoading = false
	s.lastError = ""
}

// MarkRead flips one record to read. Returns false when the id is unknown.
// Server ids are remembered as pending so a concurrent fetch cannot undo
// the flip.
func (s *FeedStore) MarkRead(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.ID != id {
			continue
		}
		if !record.IsRead {
			record.IsRead = true
			if id > 0 {
				s.pendingRead[id] = struct{}{}
			}
		}

		return true
	}

	return false
}

// MarkAllRead flips every record to read. Idempotent.
func (s *FeedStore) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.IsRead {
			continue
		}
		record.IsRead = true
		if record.ID > 0 {
			s.pendingRead[record.ID] = struct{}{}
		}
	}
}

// Remove deletes one record from the feed. Returns false when the id is
// unknown.
func (s *FeedStore) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, record := range s.records {
		if record.ID != id {
			continue
		}
		s.records = append(s.records[:i], s.records[i+1:]...)
		delete(s.pendingRead, id)

		return true
	}

	return false
}

// Clear resets the store to its empty state. Called on logout.
func (s *FeedStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	s.pendingRead = make(map[int64]struct{})
	s.isLoading = false
	s.lastError = ""
	s.pushActive = false
}

// BeginLoading marks the initial fetch for a fresh identity as in flight.
func (s *FeedStore) BeginLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isLoading = true
	s.lastError = ""
}

// SetSyncError records a failed sync. The existing feed stays untouched.
func (s *FeedStore) SetSyncError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isLoading = false
	s.lastError = message
}

// SetPushActive records whether the push channel is delivering.
func (s *FeedStore) SetPushActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pushActive = active
}

// Snapshot returns a copy of the current feed view with the unread count
// derived from the records.
func (s *FeedStore) Snapshot() usecase.FeedSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*entity.NotificationRecord, len(s.records))
	unread := 0
	for i, record := range s.records {
		copied := *record
		records[i] = &copied
		if !record.IsRead {
			unread++
		}
	}

	return usecase.FeedSnapshot{
		Records:     records,
		UnreadCount: unread,
		IsLoading:   s.isLoading,
		LastError:   s.lastError,
		PushActive:  s.pushActive,
	}
}
