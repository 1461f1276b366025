package session

import (
	"context"
	"sync"
	"time"
)

// janitorInterval is how often expired sessions are swept from memory
const janitorInterval = time.Minute

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// MemoryStore implements Store with an in-memory map. Suitable for
// single-instance deployments and tests; sessions do not survive restarts.
type MemoryStore struct {
	mu        sync.RWMutex
	entries   map[string]memoryEntry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewMemoryStore creates an in-memory session store and starts its janitor
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		entries:  make(map[string]memoryEntry),
		stopChan: make(chan struct{}),
	}

	store.wg.Add(1)
	go store.janitor()

	return store
}

// Save stores a copy of the session under its ID
func (m *MemoryStore) Save(ctx context.Context, s *Session, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[s.ID] = memoryEntry{
		session:   *s,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Get returns a copy of the session or ErrNotFound
func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[id]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, ErrNotFound
	}

	s := e.session
	return &s, nil
}

// Delete removes the session
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, id)
	return nil
}

// Close stops the janitor. Safe to call multiple times.
func (m *MemoryStore) Close() error {
	m.closeOnce.Do(func() {
		close(m.stopChan)
		m.wg.Wait()
	})
	return nil
}

// Len returns the number of stored sessions (for tests and monitoring)
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// ActiveSessions counts stored sessions that have not yet expired. Feeds
// the live-session gauge.
func (m *MemoryStore) ActiveSessions(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := time.Now()
	var n int64
	for _, e := range m.entries {
		if now.Before(e.expiresAt) {
			n++
		}
	}
	return n, nil
}

func (m *MemoryStore) janitor() {
	defer m.wg.Done()

	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopChan:
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

func (m *MemoryStore) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for id, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, id)
		}
	}
}

var _ Store = (*MemoryStore)(nil)
