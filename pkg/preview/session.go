package preview

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dmitrymomot/qrgen/pkg/async"
	"github.com/dmitrymomot/qrgen/pkg/logger"
	"github.com/dmitrymomot/qrgen/pkg/logo"
	"github.com/dmitrymomot/qrgen/pkg/metrics"
	"github.com/dmitrymomot/qrgen/pkg/payload"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
	"github.com/dmitrymomot/qrgen/pkg/render"
)

// DefaultDebounce is the quiet period before a render starts.
const DefaultDebounce = 400 * time.Millisecond

// Renderer produces preview images.
type Renderer interface {
	Preview(ctx context.Context, req render.Request) (*render.Result, error)
}

// Session is one visitor's live preview.
type Session struct {
	id       string
	renderer Renderer
	registry *Registry
	clock    Clock
	debounce time.Duration
	log      *slog.Logger
	metrics  *metrics.Metrics

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	input   Input
	logo    *logo.Logo
	gen     uint64
	timer   Timer
	current Handle
	state   State
	subs    map[chan State]struct{}
	closed  bool
}

func newSession(id string, c config) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		id:       id,
		renderer: c.renderer,
		registry: c.registry,
		clock:    c.clock,
		debounce: c.debounce,
		log:      c.log.With(logger.VisitorID(id)),
		metrics:  c.metrics,
		ctx:      ctx,
		cancel:   cancel,
		input:    Input{ContentType: payload.URL},
		state:    State{Empty: true},
		subs:     make(map[chan State]struct{}),
	}
}

// ID returns the visitor ID the session belongs to.
func (s *Session) ID() string { return s.id }

// Update replaces the visitor input and schedules a render.
// Warnings and the empty-content flag are reported immediately.
func (s *Session) Update(in Input) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.state
	}
	if in.ContentType != s.input.ContentType {
		// a different content type invalidates whatever was shown
		s.releaseCurrentLocked()
		s.state.Error = ""
		s.state.LogoError = ""
	}
	s.input = in
	return s.scheduleLocked()
}

// SetLogo sets or clears (nil) the logo and schedules a render.
func (s *Session) SetLogo(l *logo.Logo) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.state
	}
	s.logo = l
	return s.scheduleLocked()
}

// Snapshot returns the current input and logo.
func (s *Session) Snapshot() (Input, *logo.Logo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input, s.logo
}

// State returns the latest published state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe returns a channel that receives every published state, starting
// with the current one. Slow readers only see the most recent state.
// The channel is closed by the returned cancel function or by Close.
func (s *Session) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan State, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	ch <- s.state
	s.subs[ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if _, ok := s.subs[ch]; ok {
				delete(s.subs, ch)
				close(ch)
			}
		})
	}
}

// Close stops pending renders, releases the displayed image and closes all
// subscriptions. It is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.cancel()
	s.releaseCurrentLocked()
	for ch := range s.subs {
		delete(s.subs, ch)
		close(ch)
	}
	s.metrics.SessionClosed()
}

func (s *Session) scheduleLocked() State {
	s.metrics.PreviewTriggered()
	s.gen++
	gen := s.gen

	if s.timer != nil {
		if s.timer.Stop() {
			s.metrics.PreviewCancelled()
		}
		s.timer = nil
	}

	in := s.input
	text, err := payload.Encode(in.ContentType, in.Fields)

	st := s.state
	st.Generation = gen
	st.Warnings = payload.Validate(in.ContentType, in.Fields)
	st.Chars = utf8.RuneCountInString(text)
	st.HasLogo = s.logo != nil

	if err != nil {
		// nothing to render: clear the preview and any error
		s.releaseCurrentLocked()
		st.Handle = ""
		st.Pending = false
		st.Empty = true
		st.Error = ""
		st.LogoError = ""
		st.Scaled = false
		s.publishLocked(st)
		return st
	}

	st.Empty = false
	st.Pending = true
	s.publishLocked(st)

	req := render.Request{Payload: text, Style: in.Style, Logo: s.logo}
	s.timer = s.clock.AfterFunc(s.debounce, func() { s.fire(gen, req) })
	return st
}

func (s *Session) fire(gen uint64, req render.Request) {
	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.mu.Unlock()

	s.log.DebugContext(s.ctx, "preview render started", logger.Generation(gen), logger.Size(req.Style.Size))
	async.Async(s.ctx, req, s.renderer.Preview).OnComplete(func(res *render.Result, err error) {
		s.apply(gen, res, err)
	})
}

func (s *Session) apply(gen uint64, res *render.Result, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if gen != s.gen {
		s.metrics.PreviewDiscarded()
		s.log.DebugContext(s.ctx, "stale preview discarded", logger.Generation(gen), slog.Uint64("latest", s.gen))
		return
	}

	st := s.state
	st.Pending = false

	if err != nil {
		s.releaseCurrentLocked()
		st.Handle = ""
		st.Scaled = false
		st.LogoError = ""
		st.Error = userMessage(err)
		s.log.WarnContext(s.ctx, "preview render failed", logger.Generation(gen), logger.Error(err))
		s.publishLocked(st)
		return
	}

	h := s.registry.Add(res.Image)
	old := s.current
	s.current = h
	s.registry.Release(old)

	st.Handle = h
	st.Format = res.Image.Format
	st.Scaled = res.Scaled
	st.PreviewSize = res.Image.Size
	st.RequestedSize = res.RequestedSize
	st.Error = ""
	st.LogoError = ""
	if res.LogoErr != nil {
		st.LogoError = MsgLogoFailed
	}
	s.publishLocked(st)
}

func (s *Session) releaseCurrentLocked() {
	if s.current != "" {
		s.registry.Release(s.current)
		s.current = ""
		s.state.Handle = ""
	}
}

func (s *Session) publishLocked(st State) {
	s.state = st
	for ch := range s.subs {
		select {
		case ch <- st:
		default:
			// drop the unread state, keep the newest
			select {
			case <-ch:
			default:
			}
			ch <- st
		}
	}
}

func userMessage(err error) string {
	if errors.Is(err, qrcode.ErrContentTooLong) {
		return MsgTooLong
	}
	return MsgGenerateFailed
}
