// Package session implements the name-capture login gate. A login creates
// a session that owns its own in-memory store and engine instance, so
// every session's records are fully isolated and vanish on logout or
// expiry. There are no credentials; the name only personalizes the views.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/amriz26/BudgetpalCsc642/internal/model"
	"github.com/amriz26/BudgetpalCsc642/internal/observability"
	"github.com/amriz26/BudgetpalCsc642/internal/service"
	"github.com/amriz26/BudgetpalCsc642/internal/store"
)

// Session is one logged-in user's engine instance.
type Session struct {
	Token     string
	UserName  string
	CreatedAt time.Time
	LastSeen  time.Time

	Service *service.FinanceService
}

// Manager owns all live sessions, keyed by token.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	ttl      time.Duration
	seedDemo bool
	logger   *zap.Logger
	metrics  *observability.Metrics
	now      func() time.Time
}

// NewManager creates a session manager. Sessions idle longer than ttl are
// dropped lazily on the next access. When seedDemo is set, each new
// session starts with the demo data set instead of empty collections.
func NewManager(ttl time.Duration, seedDemo bool, logger *zap.Logger, metrics *observability.Metrics) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = observability.NewMetrics()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		seedDemo: seedDemo,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
	}
}

// Login starts a session for the given display name and returns it with a
// fresh token. The name is required; nothing else is checked.
func (m *Manager) Login(ctx context.Context, name string) (*Session, error) {
	if name == "" {
		return nil, model.ValidationError("name", "is required")
	}

	memStore := store.NewMemoryStore()
	if m.seedDemo {
		if err := store.SeedDemoData(ctx, memStore); err != nil {
			return nil, err
		}
	}

	sess := &Session{
		Token:     uuid.New().String(),
		UserName:  name,
		CreatedAt: m.now(),
		LastSeen:  m.now(),
		Service:   service.NewFinanceService(memStore, m.logger, m.metrics),
	}

	m.mu.Lock()
	m.pruneLocked()
	m.sessions[sess.Token] = sess
	m.mu.Unlock()

	m.metrics.SessionStarted()
	m.logger.Info("session started", zap.String("user", name))
	return sess, nil
}

// Get resolves a token to its live session and refreshes its idle timer.
func (m *Manager) Get(token string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[token]
	if !ok {
		return nil, false
	}
	if m.expired(sess) {
		delete(m.sessions, token)
		m.metrics.SessionEnded()
		return nil, false
	}
	sess.LastSeen = m.now()
	return sess, true
}

// Logout drops the session. Unknown tokens are a no-op.
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[token]; ok {
		delete(m.sessions, token)
		m.metrics.SessionEnded()
	}
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) expired(sess *Session) bool {
	return m.ttl > 0 && m.now().Sub(sess.LastSeen) > m.ttl
}

func (m *Manager) pruneLocked() {
	for token, sess := range m.sessions {
		if m.expired(sess) {
			delete(m.sessions, token)
			m.metrics.SessionEnded()
		}
	}
}
