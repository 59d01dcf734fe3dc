package player

import (
	"sync"
	"time"

	"github.com/samber/mo"
	"github.com/tvjuke-cli/tvjuke/log"
)

// Session owns the zero-or-one active playback process. All mutation goes
// through one mutex, so starting a new clip always fully stops the previous
// one first and two clips are never audible at once.
type Session struct {
	engine Engine
	grace  time.Duration

	mu      sync.Mutex
	handle  Handle
	looping bool
}

// NewSession creates a Session around the given engine. grace is how long a
// terminated process gets to exit before it is killed.
func NewSession(engine Engine, grace time.Duration) *Session {
	return &Session{engine: engine, grace: grace}
}

// Start stops any current playback, then launches the new clip.
func (s *Session) Start(path string, caption mo.Option[string], loop bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	handle, err := s.engine.Launch(path, caption, loop)
	if err != nil {
		return err
	}
	s.handle = handle
	s.looping = loop
	return nil
}

// Stop terminates the active process, if any. Calling it with nothing
// running, or with a process that already exited, is a no-op.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// stopLocked releases the current handle, escalating terminate to kill when
// the process does not exit within the grace window. Callers hold s.mu.
func (s *Session) stopLocked() {
	handle := s.handle
	s.handle = nil
	s.looping = false

	if handle == nil || handle.HasExited() {
		return
	}

	log.Debug("stopping current video")
	_ = handle.Terminate()

	select {
	case <-handle.Wait():
	case <-time.After(s.grace):
		log.Warnf("playback process ignored terminate for %s, killing", s.grace)
		_ = handle.Kill()
	}
}

// Running reports whether a playback process is currently alive.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handle != nil && !s.handle.HasExited()
}

// Looping reports whether the active playback was started in loop mode.
func (s *Session) Looping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handle != nil && s.looping
}

// Reap consumes a natural end of playback: if a non-loop process exited on
// its own (not through Stop), the session forgets it and reports true.
// Each natural exit is reported exactly once.
func (s *Session) Reap() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == nil || s.looping || !s.handle.HasExited() {
		return false
	}
	s.handle = nil
	return true
}

// Done returns a channel closed when the active process exits.
// With nothing running the channel is already closed.
func (s *Session) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return s.handle.Wait()
}
