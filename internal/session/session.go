// Package session binds one store and one gateway client to each chat user.
package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"sixcities/internal/action"
	"sixcities/internal/api"
	"sixcities/internal/domain"
	"sixcities/internal/store"

	"go.uber.org/zap"
)

// TokenStore persists auth tokens between restarts
type TokenStore interface {
	Restore(userID int64) (string, error)
	Remember(userID int64, token string) error
	Forget(userID int64) error
}

// GatewayFactory builds the gateway client of a new session
type GatewayFactory func(token api.TokenSource, onUnauthorized func(*api.APIError)) (api.Gateway, error)

// NavigatorFactory builds the navigator that renders redirects for a user
type NavigatorFactory func(userID int64) store.Navigator

// Session is the client state of a single chat user
type Session struct {
	UserID int64

	store   *store.Store
	gateway api.Gateway
	tokens  TokenStore
	logger  *zap.Logger

	tokenMu sync.RWMutex
	token   string

	ready    sync.Once
	wg       sync.WaitGroup
	lastSeen atomic.Int64
}

func newSession(userID int64, token string, tokens TokenStore, newGateway GatewayFactory, nav store.Navigator, logger *zap.Logger) (*Session, error) {
	s := &Session{
		UserID: userID,
		tokens: tokens,
		token:  token,
		logger: logger.With(zap.Int64("user_id", userID)),
	}
	s.touch()

	gw, err := newGateway(s.Token, s.onUnauthorized)
	if err != nil {
		return nil, fmt.Errorf("create gateway: %w", err)
	}
	s.gateway = gw

	middleware := []store.Middleware{store.LoggingMiddleware(s.logger)}
	if nav != nil {
		middleware = append(middleware, store.RedirectMiddleware(nav))
	}
	s.store = store.New(store.InitialState(), s.logger, middleware...)
	s.store.Subscribe(s.persistToken)

	return s, nil
}

// Token returns the auth token sent with every request
func (s *Session) Token() string {
	s.tokenMu.RLock()
	defer s.tokenMu.RUnlock()
	return s.token
}

func (s *Session) setToken(token string) bool {
	s.tokenMu.Lock()
	defer s.tokenMu.Unlock()
	if s.token == token {
		return false
	}
	s.token = token
	return true
}

func (s *Session) touch() {
	s.lastSeen.Store(time.Now().UnixNano())
}

// LastSeen returns when the user last reached the session
func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

// State returns a snapshot of the session state
func (s *Session) State() store.State {
	return s.store.State()
}

// Dispatch sends a plain action to the session store
func (s *Session) Dispatch(a store.Action) {
	s.store.Dispatch(a)
}

// Subscribe registers a state listener
func (s *Session) Subscribe(l store.Listener) func() {
	return s.store.Subscribe(l)
}

// Run executes a task and returns when it has dispatched its outcome
func (s *Session) Run(ctx context.Context, task action.Task) {
	task(ctx, s.store, s.gateway)
}

// Go executes a task in the background.
// The returned channel is closed once the task is done.
func (s *Session) Go(ctx context.Context, task action.Task) <-chan struct{} {
	done := make(chan struct{})
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(done)
		task(ctx, s.store, s.gateway)
	}()
	return done
}

// Wait blocks until all background tasks finished
func (s *Session) Wait() {
	s.wg.Wait()
}

func (s *Session) onUnauthorized(err *api.APIError) {
	s.logger.Info("Server rejected credentials", zap.Int("status", err.Status))
	s.forgetToken()
	s.store.Dispatch(action.SetAuthStatus(domain.AuthStatusNoAuth))
}

// forgetToken drops the token once; a failed check on a network error keeps it
func (s *Session) forgetToken() {
	if !s.setToken("") {
		return
	}
	if err := s.tokens.Forget(s.UserID); err != nil {
		s.logger.Error("Failed to delete token", zap.Error(err))
	}
}

// persistToken keeps the stored token in line with the user slice.
// Clearing a signed in user is a logout.
func (s *Session) persistToken(prev, next store.State) {
	if u := next.User.User; u != nil && u.Token != "" && s.setToken(u.Token) {
		if err := s.tokens.Remember(s.UserID, u.Token); err != nil {
			s.logger.Error("Failed to save token", zap.Error(err))
		}
	}

	if prev.User.User != nil && next.User.User == nil {
		s.forgetToken()
	}
}
