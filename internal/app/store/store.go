package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/todosync/internal/app/action"
	"github.com/jsamuelsen11/todosync/internal/platform/logging"
)

// ErrNotInitialized is reported by the readiness check until the session
// bootstrap has settled.
var ErrNotInitialized = errors.New("app state not initialized")

// Listener observes every dispatched action together with the state it
// produced. Listeners run inside the dispatch step and must not call
// Dispatch.
type Listener func(a action.Action, next State)

// Store is the single writer of State. Dispatch is serialized: each action
// is reduced against the state left by the previous one, and listeners see
// actions in the order they were applied. Snapshot never blocks on a
// dispatch in progress.
type Store struct {
	dispatchMu sync.Mutex
	state      *ref[State]

	listenersMu sync.RWMutex
	listeners   map[uint64]Listener
	nextID      uint64
}

// New creates a Store holding Initial().
func New() *Store {
	return &Store{
		state:     newRef(Initial()),
		listeners: make(map[uint64]Listener),
	}
}

// Dispatch applies a to the state and notifies listeners.
func (s *Store) Dispatch(ctx context.Context, a action.Action) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	next := Reduce(s.state.load(), a)
	s.state.swap(next)

	logging.FromContext(ctx).DebugContext(ctx, "action dispatched",
		slog.String("action", a.Type()),
		slog.String("action_id", a.ID.String()),
		slog.String("app_status", next.App.Status.String()),
	)

	for _, l := range s.subscribers() {
		l(a, next)
	}
}

func (s *Store) subscribers() []Listener {
	s.listenersMu.RLock()
	defer s.listenersMu.RUnlock()
	out := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		out = append(out, l)
	}
	return out
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	return s.state.load()
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			delete(s.listeners, id)
			s.listenersMu.Unlock()
		})
	}
}

// Name implements the readiness checker contract.
func (s *Store) Name() string { return "app-state" }

// HealthCheck reports ErrNotInitialized until the session bootstrap settles.
func (s *Store) HealthCheck(_ context.Context) error {
	if !s.Snapshot().App.IsInitialized {
		return ErrNotInitialized
	}
	return nil
}
