// apps/go-board/internal/store/memory.go
//
// In-memory implementation of the session Store.
// Sessions are ephemeral: state is lost when the process restarts.
//
// Characteristics:
//   - Map of entries keyed by session ID, guarded by an RWMutex.
//   - Each entry has its own mutex; Update runs the caller's transition under
//     it, so key presses for one session are applied one at a time.
//   - Get hands out snapshots, never the live session.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/go-board/internal/game"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Store defines the holding interface for live sessions.
type Store interface {
	// Save adds or replaces a session.
	Save(ctx context.Context, s *game.Session) error

	// Get returns a snapshot of the session.
	Get(ctx context.Context, id string) (game.Session, error)

	// Update runs fn on the live session under its lock and returns the
	// snapshot taken right after fn.
	Update(ctx context.Context, id string, fn func(*game.Session) error) (game.Session, error)

	// Delete drops a session; unknown IDs are not an error.
	Delete(ctx context.Context, id string) error

	// Prune drops sessions idle since before cutoff and returns how many.
	Prune(ctx context.Context, cutoff time.Time) (int, error)
}

type entry struct {
	mu   sync.Mutex
	sess *game.Session
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex      // guards sessions map
	sessions map[string]*entry // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*entry)}
}

func (m *memory) Save(ctx context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = &entry{sess: s}
	return nil
}

func (m *memory) lookup(id string) (*entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.sessions[id]; ok {
		return e, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Get(ctx context.Context, id string) (game.Session, error) {
	e, err := m.lookup(id)
	if err != nil {
		return game.Session{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sess.Snapshot(), nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Session) error) (game.Session, error) {
	e, err := m.lookup(id)
	if err != nil {
		return game.Session{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	err = fn(e.sess)
	return e.sess.Snapshot(), err
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Prune(ctx context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.sessions {
		e.mu.Lock()
		idle := e.sess.UpdatedAt.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}
