package presence

import (
	"context"
	"sync"
	"time"
)

type memoryTracker struct {
	mu      sync.RWMutex
	expires map[string]time.Time
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryTracker returns an in-process Tracker. Used when no Redis address
// is configured; presence is then scoped to a single server instance.
func NewMemoryTracker(ttl time.Duration) Tracker {
	return &memoryTracker{
		expires: make(map[string]time.Time),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (t *memoryTracker) MarkOnline(_ context.Context, userID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.expires[userID] = t.now().Add(t.ttl)
	return nil
}

func (t *memoryTracker) IsOnline(_ context.Context, userID string) (bool, error) {
	t.mu.RLock()
	deadline, ok := t.expires[userID]
	t.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if t.now().After(deadline) {
		// Lazy eviction: expired entries are removed on read.
		t.mu.Lock()
		delete(t.expires, userID)
		t.mu.Unlock()
		return false, nil
	}
	return true, nil
}

func (t *memoryTracker) MarkOffline(_ context.Context, userID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.expires, userID)
	return nil
}
