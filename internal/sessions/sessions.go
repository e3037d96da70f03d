// Package sessions keeps one theme engine per visitor for as long as the
// visitor keeps coming back.
package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/thatcatcamp/folio/internal/engine"
	"github.com/thatcatcamp/folio/internal/themes"
	"golang.org/x/sync/singleflight"
)

// StoreFactory returns the persisted store for a visitor.
type StoreFactory func(visitorID string) engine.Store

// Session wraps a visitor's engine. Use Do for every engine access.
type Session struct {
	ID string

	mu        sync.Mutex
	engine    *engine.Engine
	sink      *engine.MemorySink
	pref      *engine.Preference
	expiresAt time.Time
}

// Do runs fn with exclusive access to the engine.
func (s *Session) Do(fn func(e *engine.Engine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.engine)
}

// Variables returns the last applied variable set.
func (s *Session) Variables() map[string]string {
	return s.sink.Variables()
}

// Observe feeds an OS preference report into the session. Unknown values
// are ignored.
func (s *Session) Observe(system themes.ColorMode) {
	if !system.IsResolved() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pref.Set(system)
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Close()
}

// Manager owns the live sessions.
type Manager struct {
	logger   zerolog.Logger
	stores   StoreFactory
	ttl      time.Duration
	options  []engine.Option
	registry *themes.Registry

	mu       sync.Mutex
	sessions map[string]*Session
	starting singleflight.Group
	now      func() time.Time
}

// Option configures the Manager.
type Option func(*Manager)

// WithEngineOptions passes options to every engine the manager creates.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(m *Manager) {
		m.options = append(m.options, opts...)
	}
}

// WithRegistry sets the registry used by engines and listings.
func WithRegistry(reg *themes.Registry) Option {
	return func(m *Manager) {
		m.registry = reg
	}
}

func NewManager(logger zerolog.Logger, stores StoreFactory, ttl time.Duration, opts ...Option) *Manager {
	m := &Manager{
		logger:   logger,
		stores:   stores,
		ttl:      ttl,
		registry: themes.Builtin(),
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Registry returns the registry sessions resolve against.
func (m *Manager) Registry() *themes.Registry {
	return m.registry
}

// Acquire returns the visitor's live session, creating and starting a new
// engine when there is none or it has expired. params are only consulted
// for a new engine. A resolved system preference is applied either way.
// Concurrent first requests for one visitor share a single start.
func (m *Manager) Acquire(visitorID string, params engine.Params, system themes.ColorMode) *Session {
	if s := m.lookup(visitorID); s != nil {
		s.Observe(system)
		return s
	}

	v, _, _ := m.starting.Do(visitorID, func() (any, error) {
		if s := m.lookup(visitorID); s != nil {
			return s, nil
		}
		s := m.newSession(visitorID, params, system)

		m.mu.Lock()
		s.expiresAt = m.now().Add(m.ttl)
		m.sessions[visitorID] = s
		m.mu.Unlock()
		return s, nil
	})

	s := v.(*Session)
	s.Observe(system)
	return s
}

// lookup returns the live session and extends its TTL. An expired session
// is removed and closed.
func (m *Manager) lookup(visitorID string) *Session {
	now := m.now()

	m.mu.Lock()
	s, ok := m.sessions[visitorID]
	if !ok {
		m.mu.Unlock()
		return nil
	}
	if now.After(s.expiresAt) {
		delete(m.sessions, visitorID)
		m.mu.Unlock()
		s.close()
		return nil
	}
	s.expiresAt = now.Add(m.ttl)
	m.mu.Unlock()
	return s
}

func (m *Manager) newSession(visitorID string, params engine.Params, system themes.ColorMode) *Session {
	if !system.IsResolved() {
		system = ""
	}
	s := &Session{
		ID:   visitorID,
		sink: &engine.MemorySink{},
		pref: engine.NewPreference(system),
	}
	opts := append([]engine.Option{
		engine.WithLogger(m.logger.With().Str("visitor", visitorID).Logger()),
		engine.WithRegistry(m.registry),
	}, m.options...)
	s.engine = engine.New(m.stores(visitorID), s.sink, s.pref, opts...)
	s.engine.Start(params)

	m.logger.Debug().Str("visitor", visitorID).Msg("session started")
	return s
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Evict closes sessions whose TTL has passed and returns how many.
func (m *Manager) Evict() int {
	now := m.now()

	m.mu.Lock()
	var expired []*Session
	for id, s := range m.sessions {
		if now.After(s.expiresAt) {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.close()
	}
	return len(expired)
}

// Close ends every session.
func (m *Manager) Close() {
	m.mu.Lock()
	all := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range all {
		s.close()
	}
}

// Run evicts expired sessions every interval until ctx is done, then
// closes the rest.
func (m *Manager) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.Close()
			return nil
		case <-ticker.C:
			if n := m.Evict(); n > 0 {
				m.logger.Debug().Int("evicted", n).Int("live", m.Len()).Msg("expired sessions closed")
			}
		}
	}
}
