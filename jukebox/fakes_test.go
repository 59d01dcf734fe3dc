package jukebox

import (
	"sync"
	"time"

	"github.com/samber/mo"
	"github.com/tvjuke-cli/tvjuke/input"
	"github.com/tvjuke-cli/tvjuke/player"
)

// stubHandle is a playback process stand-in that exits on request.
type stubHandle struct {
	mu     sync.Mutex
	exited chan struct{}
}

func newStubHandle() *stubHandle {
	return &stubHandle{exited: make(chan struct{})}
}

func (h *stubHandle) exit() {
	h.mu.Lock()
	defer h.mu.Unlock()
	select {
	case <-h.exited:
	default:
		close(h.exited)
	}
}

func (h *stubHandle) HasExited() bool {
	select {
	case <-h.exited:
		return true
	default:
		return false
	}
}

func (h *stubHandle) Terminate() error { h.exit(); return nil }
func (h *stubHandle) Kill() error      { h.exit(); return nil }

func (h *stubHandle) Wait() <-chan struct{} { return h.exited }

// launchRecord captures one Engine.Launch call.
type launchRecord struct {
	path    string
	caption string
	loop    bool
}

// stubEngine records launches and hands out stub handles.
type stubEngine struct {
	mu       sync.Mutex
	launches []launchRecord
	handles  []*stubHandle
}

func (e *stubEngine) Launch(path string, caption mo.Option[string], loop bool) (player.Handle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	h := newStubHandle()
	e.handles = append(e.handles, h)
	e.launches = append(e.launches, launchRecord{path: path, caption: caption.OrElse(""), loop: loop})
	return h, nil
}

func (e *stubEngine) recorded() []launchRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]launchRecord(nil), e.launches...)
}

func (e *stubEngine) last() *stubHandle {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.handles[len(e.handles)-1]
}

// stubSource feeds a scripted event stream to the session loop.
type stubSource struct {
	events chan input.Event
	err    error
}

func newStubSource() *stubSource {
	return &stubSource{events: make(chan input.Event, 16)}
}

func (s *stubSource) Events() <-chan input.Event { return s.events }
func (s *stubSource) Err() error                 { return s.err }
func (s *stubSource) Close() error               { return nil }

// press scripts a full press-release of a key held for the given duration.
func (s *stubSource) press(code uint16, held time.Duration) {
	base := time.Unix(1000, 0)
	s.events <- input.Event{Code: code, Pressed: true, Time: base}
	s.events <- input.Event{Code: code, Pressed: false, Time: base.Add(held)}
}

// eventually polls a condition until it holds or the deadline passes.
func eventually(cond func() bool) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return false
}
