// internal/store/memory.go
//
// In-memory session store.
//
// Characteristics:
//   - Holds *game.Session values keyed by a random UUID.
//   - Map access is guarded by an RWMutex; each entry has its own mutex so
//     events for one session run one at a time while different sessions
//     proceed in parallel.
//   - Idle sessions are dropped by Sweep. State is lost on restart.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/go-puzzle/internal/game"
)

// ErrNotFound is returned for unknown or evicted session IDs.
var ErrNotFound = errors.New("session not found")

// Store holds live sessions for the HTTP front end.
type Store interface {
	// Create registers s and returns its new ID.
	Create(ctx context.Context, s *game.Session) (string, error)

	// With runs fn with exclusive access to the session id.
	// fn's error is returned unchanged.
	With(ctx context.Context, id string, fn func(*game.Session) error) error

	// Delete forgets a session. Unknown IDs are not an error.
	Delete(ctx context.Context, id string) error
}

type entry struct {
	mu       sync.Mutex // serializes events for this session
	sess     *game.Session
	lastUsed time.Time
}

// Memory is a map-backed Store.
type Memory struct {
	mu       sync.RWMutex // guards sessions
	sessions map[string]*entry
	now      func() time.Time
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() *Memory {
	return &Memory{sessions: make(map[string]*entry), now: time.Now}
}

// Create adds s under a fresh UUID.
func (m *Memory) Create(ctx context.Context, s *game.Session) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := uuid.NewString()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = &entry{sess: s, lastUsed: m.now()}
	return id, nil
}

// With locks the session's entry for the duration of fn.
func (m *Memory) With(ctx context.Context, id string, fn func(*game.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastUsed = m.now()
	return fn(e.sess)
}

// Delete removes id.
func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len is the number of live sessions.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep drops sessions idle for longer than ttl and reports how many.
func (m *Memory) Sweep(ttl time.Duration) int {
	cutoff := m.now().Add(-ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.sessions {
		e.mu.Lock()
		idle := e.lastUsed.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is done.
func (m *Memory) RunSweeper(ctx context.Context, interval, ttl time.Duration, onSweep func(n int)) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := m.Sweep(ttl); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}
