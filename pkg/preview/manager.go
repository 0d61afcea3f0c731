package preview

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/qrgen/pkg/cache"
	"github.com/dmitrymomot/qrgen/pkg/logger"
	"github.com/dmitrymomot/qrgen/pkg/metrics"
)

const DefaultSessionCapacity = 10000

type config struct {
	renderer Renderer
	registry *Registry
	clock    Clock
	debounce time.Duration
	capacity int
	log      *slog.Logger
	metrics  *metrics.Metrics
}

// Option configures a Manager.
type Option func(*config)

func WithDebounce(d time.Duration) Option {
	return func(c *config) {
		if d >= 0 {
			c.debounce = d
		}
	}
}

func WithClock(clk Clock) Option {
	return func(c *config) {
		if clk != nil {
			c.clock = clk
		}
	}
}

func WithSessionCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *config) { c.metrics = m }
}

// Manager owns all live sessions.
type Manager struct {
	cfg      config
	mu       sync.Mutex
	sessions *cache.LRUCache[string, *Session]
}

func NewManager(renderer Renderer, registry *Registry, opts ...Option) *Manager {
	cfg := config{
		renderer: renderer,
		registry: registry,
		clock:    realClock{},
		debounce: DefaultDebounce,
		capacity: DefaultSessionCapacity,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.log = cfg.log.With(logger.Component("preview"))

	m := &Manager{
		cfg:      cfg,
		sessions: cache.NewLRUCache[string, *Session](cfg.capacity),
	}
	m.sessions.SetEvictCallback(func(_ string, s *Session) {
		s.Close()
	})
	return m
}

// Session returns the session for id, creating it on first use.
func (m *Manager) Session(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions.Get(id); ok {
		return s
	}
	s := newSession(id, m.cfg)
	m.sessions.Put(id, s)
	m.cfg.metrics.SessionOpened()
	return s
}

// Lookup returns the session for id without creating one.
func (m *Manager) Lookup(id string) (*Session, bool) {
	return m.sessions.Get(id)
}

// End closes and forgets the session for id.
func (m *Manager) End(id string) {
	m.sessions.Remove(id)
}

// Drop ends s when it is still the live session for its visitor, and only
// closes it otherwise. A stream that outlives a page reload uses it so that it
// never ends the session the new page created.
func (m *Manager) Drop(s *Session) {
	m.mu.Lock()
	cur, ok := m.sessions.Get(s.ID())
	m.mu.Unlock()

	if ok && cur == s {
		m.sessions.Remove(s.ID())
		return
	}
	s.Close()
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	return m.sessions.Len()
}

// Close ends every session.
func (m *Manager) Close() {
	m.sessions.Clear()
}
