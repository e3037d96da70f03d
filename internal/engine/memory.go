package engine

import (
	"maps"
	"sync"

	"github.com/thatcatcamp/folio/internal/themes"
)

// MemoryStore is a Store backed by a map.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// MemorySink keeps the most recently applied variables.
type MemorySink struct {
	mu      sync.RWMutex
	vars    map[string]string
	applies int
}

func (s *MemorySink) Apply(vars map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars = maps.Clone(vars)
	s.applies++
}

// Variables returns a copy of the last applied set.
func (s *MemorySink) Variables() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.vars)
}

// Get returns one variable from the last applied set.
func (s *MemorySink) Get(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vars[name]
}

// Applies counts Apply calls.
func (s *MemorySink) Applies() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applies
}

// Preference is a settable PreferenceSource. Subscribers are notified
// synchronously from Set, and only when the value changes.
type Preference struct {
	mu      sync.Mutex
	current themes.ColorMode
	nextID  int
	subs    map[int]func(themes.ColorMode)
}

// NewPreference starts with initial, which may be "" for unknown.
func NewPreference(initial themes.ColorMode) *Preference {
	return &Preference{current: initial, subs: make(map[int]func(themes.ColorMode))}
}

func (p *Preference) Current() themes.ColorMode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *Preference) Subscribe(fn func(themes.ColorMode)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextID
	p.nextID++
	p.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subs, id)
			p.mu.Unlock()
		})
	}
}

// Set records a new preference. Only dark and light are accepted.
func (p *Preference) Set(mode themes.ColorMode) {
	if !mode.IsResolved() {
		return
	}
	p.mu.Lock()
	if p.current == mode {
		p.mu.Unlock()
		return
	}
	p.current = mode
	subs := make([]func(themes.ColorMode), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()

	for _, fn := range subs {
		fn(mode)
	}
}

// Subscribers reports how many callbacks are registered.
func (p *Preference) Subscribers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subs)
}
