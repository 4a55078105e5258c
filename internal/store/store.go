package store

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Dispatch sends an action through the middleware chain
type Dispatch func(Action)

// Dispatcher is the part of the Store that tasks depend on
type Dispatcher interface {
	Dispatch(a Action)
	State() State
}

// Listener is notified after every reduction, in subscription order
type Listener func(prev, next State)

// Middleware wraps the dispatch chain
type Middleware func(next Dispatch) Dispatch

// Store holds state and serializes reductions
type Store struct {
	mu    sync.Mutex
	state State

	listenersMu sync.RWMutex
	listeners   map[int]Listener
	nextID      int

	dispatch Dispatch
	logger   *zap.Logger
}

var _ Dispatcher = (*Store)(nil)

// New creates a store with the given initial state.
// Middleware run in the order given, the first one sees the action first.
func New(initial State, logger *zap.Logger, middleware ...Middleware) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{
		state:     initial,
		listeners: make(map[int]Listener),
		logger:    logger,
	}

	d := Dispatch(s.reduce)
	for i := len(middleware) - 1; i >= 0; i-- {
		d = middleware[i](d)
	}
	s.dispatch = d

	return s
}

// Dispatch processes an action to completion.
// Listeners may dispatch again; reductions never overlap.
func (s *Store) Dispatch(a Action) {
	if a == nil {
		s.logger.Warn("Ignoring nil action")
		return
	}
	s.dispatch(a)
}

// State returns a snapshot of the current state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a listener and returns a function removing it
func (s *Store) Subscribe(l Listener) func() {
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

func (s *Store) reduce(a Action) {
	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, a)
	s.state = next
	s.mu.Unlock()

	s.notify(prev, next)
}

func (s *Store) notify(prev, next State) {
	s.listenersMu.RLock()
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	listeners := make([]Listener, 0, len(ids))
	sort.Ints(ids)
	for _, id := range ids {
		listeners = append(listeners, s.listeners[id])
	}
	s.listenersMu.RUnlock()

	for _, l := range listeners {
		l(prev, next)
	}
}

