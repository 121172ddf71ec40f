// Package playback models the lifecycle of an adaptive-streaming playback
// session: attaching a streaming engine to a media element, recovering from
// engine errors, scrubbing, and control-overlay visibility. The engine and
// the media element are interfaces so the package stays independent of any
// particular player runtime.
package playback

import (
	"errors"
	"fmt"
	"time"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StatePlaying
	StatePaused
	StateEnded
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrorType mirrors the streaming engine's error taxonomy. Network and media
// errors are recoverable; anything else is fatal to the session.
type ErrorType int

const (
	ErrorNetwork ErrorType = iota
	ErrorMedia
	ErrorOther
)

// Engine is the adaptive-bitrate streaming engine attached to the session.
type Engine interface {
	LoadSource(url string)
	AttachMedia(media Media)
	// StartLoad resumes segment loading from the current position.
	StartLoad()
	RecoverMediaError()
	Destroy()
}

// Media is the underlying media element the engine feeds.
type Media interface {
	Play() error
	Pause()
	Seek(position float64)
	Duration() float64
	CurrentTime() float64
	SetMuted(muted bool)
}

const defaultControlsHideDelay = 3 * time.Second

type Options struct {
	// ControlsHideDelay is how long controls stay visible after the last
	// pointer movement while playing. Zero means the 3s default.
	ControlsHideDelay time.Duration
	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

// Session drives one playback of one manifest URL. It is not safe for
// concurrent use; the embedding UI owns it from a single event loop.
type Session struct {
	engine Engine
	media  Media

	state State
	err   error

	muted      bool
	fullscreen bool

	dragging     bool
	dragPosition float64

	lastPointerMove   time.Time
	controlsHideDelay time.Duration
	now               func() time.Time

	destroyed bool
}

var (
	ErrNotIdle    = errors.New("playback: session already loaded")
	ErrNotLoading = errors.New("playback: manifest parsed outside of loading")
)

func NewSession(engine Engine, media Media, opts Options) *Session {
	if opts.ControlsHideDelay <= 0 {
		opts.ControlsHideDelay = defaultControlsHideDelay
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Session{
		engine:            engine,
		media:             media,
		state:             StateIdle,
		controlsHideDelay: opts.ControlsHideDelay,
		now:               opts.Now,
		lastPointerMove:   opts.Now(),
	}
}

func (s *Session) State() State { return s.state }

// Err returns the fatal error that moved the session to StateError, if any.
func (s *Session) Err() error { return s.err }

// Load points the engine at a manifest URL and attaches the media element.
// Playback begins automatically once the manifest is parsed.
func (s *Session) Load(manifestURL string) error {
	if s.state != StateIdle {
		return ErrNotIdle
	}
	s.state = StateLoading
	s.engine.LoadSource(manifestURL)
	s.engine.AttachMedia(s.media)
	return nil
}

// HandleManifestParsed is called by the engine once segments are parsed.
// The session becomes ready and starts playing.
func (s *Session) HandleManifestParsed() error {
	if s.state != StateLoading {
		return ErrNotLoading
	}
	s.state = StateReady
	if err := s.media.Play(); err != nil {
		// Autoplay can be refused; the session stays ready for a manual play.
		return nil
	}
	s.state = StatePlaying
	return nil
}

func (s *Session) Play() {
	if s.state == StateReady || s.state == StatePaused {
		if err := s.media.Play(); err == nil {
			s.state = StatePlaying
		}
	}
}

func (s *Session) Pause() {
	if s.state == StatePlaying {
		s.media.Pause()
		s.state = StatePaused
	}
}

// HandleEnded is called when the media element reaches the end of stream.
func (s *Session) HandleEnded() {
	if s.state == StatePlaying || s.state == StatePaused {
		s.state = StateEnded
	}
}

// HandleError implements the engine error policy: fatal network errors get a
// reload from the current position, fatal media errors get a decoder
// recovery, any other fatal error tears the session down exactly once.
// Non-fatal errors are the engine's own business and are ignored.
func (s *Session) HandleError(errType ErrorType, fatal bool, cause error) {
	if !fatal || s.state == StateError {
		return
	}

	switch errType {
	case ErrorNetwork:
		s.engine.StartLoad()
	case ErrorMedia:
		s.engine.RecoverMediaError()
	default:
		s.err = cause
		s.state = StateError
		s.teardown()
	}
}

// Close releases the engine and the media resource. Safe to call more than
// once; later calls are no-ops.
func (s *Session) Close() {
	s.teardown()
	if s.state != StateError {
		s.state = StateIdle
	}
}

func (s *Session) teardown() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.engine.Destroy()
}

// BeginDrag enters the scrub sub-state at the given fraction of the
// progress bar. Displayed position tracks the drag; the media element is
// untouched until EndDrag.
func (s *Session) BeginDrag(fraction float64) {
	s.dragging = true
	s.dragPosition = clamp01(fraction)
}

func (s *Session) MoveDrag(fraction float64) {
	if !s.dragging {
		return
	}
	s.dragPosition = clamp01(fraction)
}

// EndDrag leaves the scrub sub-state and commits the final position to the
// media element, exactly once per drag.
func (s *Session) EndDrag() {
	if !s.dragging {
		return
	}
	s.dragging = false
	s.media.Seek(s.dragPosition * s.media.Duration())
}

func (s *Session) Dragging() bool { return s.dragging }

// Position is the position to display: the drag position while scrubbing,
// the media element's clock otherwise.
func (s *Session) Position() float64 {
	if s.dragging {
		return s.dragPosition * s.media.Duration()
	}
	return s.media.CurrentTime()
}

func (s *Session) ToggleMute() {
	s.muted = !s.muted
	s.media.SetMuted(s.muted)
}

func (s *Session) Muted() bool { return s.muted }

func (s *Session) ToggleFullscreen() {
	s.fullscreen = !s.fullscreen
}

func (s *Session) Fullscreen() bool { return s.fullscreen }

// PointerMoved restores the control overlay and restarts the hide timer.
func (s *Session) PointerMoved() {
	s.lastPointerMove = s.now()
}

// ControlsVisible reports whether the control overlay should be shown:
// always while paused or scrubbing, and for a fixed idle window after the
// last pointer movement while playing.
func (s *Session) ControlsVisible() bool {
	if s.state != StatePlaying || s.dragging {
		return true
	}
	return s.now().Sub(s.lastPointerMove) < s.controlsHideDelay
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
