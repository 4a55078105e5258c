package testutil

import (
	"context"
	"encoding/json"
	"sync"

	"sixcities/internal/store"

	"github.com/stretchr/testify/mock"
)

// MockSessionRepository is a mock for SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockSessionRepository) GetToken(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) SaveToken(userID int64, token string) error {
	args := m.Called(userID, token)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteToken(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockSessionRepository) TouchSessions(userIDs []int64) error {
	args := m.Called(userIDs)
	return args.Error(0)
}

func (m *MockSessionRepository) CleanStaleSessions(days int) (int64, error) {
	args := m.Called(days)
	return args.Get(0).(int64), args.Error(1)
}

// MockGateway is a mock for api.Gateway.
// The first return value is encoded to JSON and decoded into out.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Get(ctx context.Context, path string, out any) error {
	args := m.Called(ctx, path)
	return fill(args.Get(0), out, args.Error(1))
}

func (m *MockGateway) Post(ctx context.Context, path string, body, out any) error {
	args := m.Called(ctx, path, body)
	return fill(args.Get(0), out, args.Error(1))
}

func fill(payload, out any, err error) error {
	if err != nil {
		return err
	}
	if payload == nil || out == nil {
		return nil
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// RecordingDispatcher records dispatched actions and reduces them into its state
type RecordingDispatcher struct {
	mu      sync.Mutex
	state   store.State
	actions []store.Action
}

var _ store.Dispatcher = (*RecordingDispatcher)(nil)

// NewRecordingDispatcher creates a dispatcher starting from the given state
func NewRecordingDispatcher(initial store.State) *RecordingDispatcher {
	return &RecordingDispatcher{state: initial}
}

func (d *RecordingDispatcher) Dispatch(a store.Action) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.actions = append(d.actions, a)
	d.state = store.Reduce(d.state, a)
}

func (d *RecordingDispatcher) State() store.State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Actions returns the dispatched actions in order
func (d *RecordingDispatcher) Actions() []store.Action {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]store.Action, len(d.actions))
	copy(out, d.actions)
	return out
}

// Types returns the types of the dispatched actions in order
func (d *RecordingDispatcher) Types() []store.ActionType {
	actions := d.Actions()
	out := make([]store.ActionType, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.Type())
	}
	return out
}

// MockTokenStore is a mock for session.TokenStore
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Restore(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenStore) Remember(userID int64, token string) error {
	args := m.Called(userID, token)
	return args.Error(0)
}

func (m *MockTokenStore) Forget(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}
