package session

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"sixcities/internal/action"
	"sixcities/internal/selector"
	"sixcities/internal/store"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Options configures a Manager
type Options struct {
	Tokens       TokenStore
	NewGateway   GatewayFactory
	NewNavigator NavigatorFactory
	Logger       *zap.Logger
}

// Manager owns the sessions of all chat users
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
	creating singleflight.Group

	tokens       TokenStore
	newGateway   GatewayFactory
	newNavigator NavigatorFactory
	logger       *zap.Logger
}

// NewManager creates a new session manager
func NewManager(opts Options) *Manager {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Manager{
		sessions:     make(map[int64]*Session),
		tokens:       opts.Tokens,
		newGateway:   opts.NewGateway,
		newNavigator: opts.NewNavigator,
		logger:       opts.Logger,
	}
}

// Get returns the session of a user, creating it on first use.
// A new session restores the stored token and resolves the auth status.
func (m *Manager) Get(ctx context.Context, userID int64) (*Session, error) {
	s, err := m.getOrCreate(userID)
	if err != nil {
		return nil, err
	}

	s.touch()
	s.ready.Do(func() {
		s.Run(ctx, action.CheckAuth())
	})

	return s, nil
}

// getOrCreate restores the token outside the map lock.
// Concurrent first calls for one user share a single restore.
func (m *Manager) getOrCreate(userID int64) (*Session, error) {
	if s, ok := m.Lookup(userID); ok {
		return s, nil
	}

	v, err, _ := m.creating.Do(strconv.FormatInt(userID, 10), func() (any, error) {
		if s, ok := m.Lookup(userID); ok {
			return s, nil
		}

		token, err := m.tokens.Restore(userID)
		if err != nil {
			return nil, fmt.Errorf("restore token: %w", err)
		}

		s, err := newSession(userID, token, m.tokens, m.newGateway, m.navigator(userID), m.logger)
		if err != nil {
			return nil, err
		}

		m.mu.Lock()
		m.sessions[userID] = s
		m.mu.Unlock()

		m.logger.Info("Session created",
			zap.Int64("user_id", userID),
			zap.Bool("token_restored", token != ""),
		)
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Session), nil
}

func (m *Manager) navigator(userID int64) store.Navigator {
	if m.newNavigator == nil {
		return nil
	}
	return m.newNavigator(userID)
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Wait blocks until background tasks of all sessions finished
func (m *Manager) Wait() {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()

	for _, s := range sessions {
		s.Wait()
	}
}

// Sweep drops sessions unused for longer than idle and returns users still active
func (m *Manager) Sweep(idle time.Duration) (active []int64, evicted int) {
	deadline := time.Now().Add(-idle)

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.sessions {
		if s.LastSeen().Before(deadline) {
			delete(m.sessions, id)
			evicted++
			continue
		}
		active = append(active, id)
	}
	return active, evicted
}

// Lookup returns an existing session without creating one
func (m *Manager) Lookup(userID int64) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[userID]
	return s, ok
}

// IsAuthorized reports whether the user is signed in to the server
func (m *Manager) IsAuthorized(ctx context.Context, userID int64) (bool, error) {
	s, err := m.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	return selector.IsAuthorized(s.State()), nil
}
