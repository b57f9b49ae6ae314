package viewstate

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/yanqian/hireup-faq/internal/domain/faq"
	"github.com/yanqian/hireup-faq/pkg/util"
)

type sessionRecord struct {
	expanded  faq.ExpandedSet
	expiresAt time.Time
}

// MemoryStore keeps expanded sets in process memory. It is the default when
// Valkey is not configured and is lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]sessionRecord
	now      util.Clock
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return newMemoryStoreWithClock(util.NowUTC)
}

func newMemoryStoreWithClock(now util.Clock) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]sessionRecord),
		now:      now,
	}
}

// LoadExpanded implements faq.StateStore.
func (s *MemoryStore) LoadExpanded(_ context.Context, sessionID string) (faq.ExpandedSet, error) {
	if sessionID == "" {
		return nil, nil
	}
	s.mu.RLock()
	record, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if s.hasExpired(record.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return nil, nil
	}
	return slices.Clone(record.expanded), nil
}

// SaveExpanded stores the set with an optional TTL; an empty set drops the session.
func (s *MemoryStore) SaveExpanded(_ context.Context, sessionID string, set faq.ExpandedSet, ttl time.Duration) error {
	if sessionID == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(set) == 0 {
		delete(s.sessions, sessionID)
		return nil
	}
	exp := time.Time{}
	if ttl > 0 {
		exp = s.now().Add(ttl)
	}
	s.sessions[sessionID] = sessionRecord{
		expanded:  slices.Clone(set),
		expiresAt: exp,
	}
	s.sweepLocked()
	return nil
}

// Len reports the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *MemoryStore) sweepLocked() {
	for id, record := range s.sessions {
		if s.hasExpired(record.expiresAt) {
			delete(s.sessions, id)
		}
	}
}

func (s *MemoryStore) hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(s.now())
}

var _ faq.StateStore = (*MemoryStore)(nil)
