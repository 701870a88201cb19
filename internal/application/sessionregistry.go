package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionRegistry holds the live sessions of the web Page layer keyed by an
// opaque identifier. Each session is guarded by its own mutex so events for
// one session are processed one at a time, while different sessions proceed
// independently.
type SessionRegistry struct {
	mu          sync.Mutex
	entries     map[string]*sessionEntry
	store       *RecordStore
	sequencer   *PresentationSequencer
	ttl         time.Duration
	maxSessions int
	now         func() time.Time
}

type sessionEntry struct {
	mu       sync.Mutex
	session  *Session
	lastSeen time.Time
}

// NewSessionRegistry creates an empty registry. Sessions idle for longer than
// ttl are removed by Sweep; a non-positive ttl disables eviction. At most
// maxSessions sessions are kept: creating one more evicts the least recently
// used. A non-positive maxSessions means no limit.
func NewSessionRegistry(store *RecordStore, sequencer *PresentationSequencer, ttl time.Duration, maxSessions int) *SessionRegistry {
	return &SessionRegistry{
		entries:     make(map[string]*sessionEntry),
		store:       store,
		sequencer:   sequencer,
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         time.Now,
	}
}

// Create starts a new session and returns its identifier.
func (r *SessionRegistry) Create() string {
	id := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.maxSessions > 0 && len(r.entries) >= r.maxSessions {
		r.evictOldestLocked()
	}
	r.entries[id] = &sessionEntry{
		session:  NewSession(r.store, r.sequencer),
		lastSeen: r.now(),
	}
	return id
}

// Exists returns true if id names a live session.
func (r *SessionRegistry) Exists(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[id]
	return ok
}

// Do runs fn against the session named id while holding that session's lock.
// It returns false, without calling fn, if the session does not exist.
func (r *SessionRegistry) Do(id string, fn func(s *Session)) bool {
	r.mu.Lock()
	entry, ok := r.entries[id]
	if ok {
		entry.lastSeen = r.now()
	}
	r.mu.Unlock()

	if !ok {
		return false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	fn(entry.session)
	return true
}

// Len returns the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep removes sessions idle for longer than the registry TTL and returns
// how many were removed.
func (r *SessionRegistry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}

	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, entry := range r.entries {
		if entry.lastSeen.Before(cutoff) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

// evictOldestLocked removes the least recently used session. r.mu must be held.
func (r *SessionRegistry) evictOldestLocked() {
	var (
		oldestID   string
		oldestSeen time.Time
	)
	for id, entry := range r.entries {
		if oldestID == "" || entry.lastSeen.Before(oldestSeen) {
			oldestID, oldestSeen = id, entry.lastSeen
		}
	}
	if oldestID != "" {
		delete(r.entries, oldestID)
		slog.Debug("session limit reached, evicted least recently used", "limit", r.maxSessions)
	}
}

// StartSweeper evicts idle sessions every interval until ctx is canceled.
// onSweep, if non-nil, is called after each pass with the live session count.
func (r *SessionRegistry) StartSweeper(ctx context.Context, interval time.Duration, onSweep func(live int)) {
	if r.ttl <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("session sweeper stopped")
			return
		case <-ticker.C:
			if removed := r.Sweep(); removed > 0 {
				slog.Debug("idle sessions evicted", "removed", removed)
			}
			if onSweep != nil {
				onSweep(r.Len())
			}
		}
	}
}
