package player

import (
	"sync"
	"testing"
	"time"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeHandle is a controllable stand-in for a playback process.
type fakeHandle struct {
	mu            sync.Mutex
	exited        chan struct{}
	terminated    bool
	killed        bool
	ignoreSignals bool
}

func newFakeHandle() *fakeHandle {
	return &fakeHandle{exited: make(chan struct{})}
}

func (h *fakeHandle) exit() {
	h.mu.Lock()
	defer h.mu.Unlock()
	select {
	case <-h.exited:
	default:
		close(h.exited)
	}
}

func (h *fakeHandle) HasExited() bool {
	select {
	case <-h.exited:
		return true
	default:
		return false
	}
}

func (h *fakeHandle) Terminate() error {
	h.mu.Lock()
	h.terminated = true
	ignore := h.ignoreSignals
	h.mu.Unlock()
	if !ignore {
		h.exit()
	}
	return nil
}

func (h *fakeHandle) Kill() error {
	h.mu.Lock()
	h.killed = true
	h.mu.Unlock()
	h.exit()
	return nil
}

func (h *fakeHandle) Wait() <-chan struct{} {
	return h.exited
}

func (h *fakeHandle) wasTerminated() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.terminated
}

func (h *fakeHandle) wasKilled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.killed
}

// fakeEngine hands out prepared fake handles in launch order.
type fakeEngine struct {
	mu       sync.Mutex
	handles  []*fakeHandle
	launched []string
}

func (e *fakeEngine) Launch(path string, _ mo.Option[string], _ bool) (Handle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	h := newFakeHandle()
	e.handles = append(e.handles, h)
	e.launched = append(e.launched, path)
	return h, nil
}

func (e *fakeEngine) last() *fakeHandle {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.handles[len(e.handles)-1]
}

func TestSessionStart(t *testing.T) {
	Convey("Session Start", t, func() {
		engine := &fakeEngine{}
		session := NewSession(engine, 50*time.Millisecond)

		Convey("Launches the clip and reports running", func() {
			So(session.Start("a.mp4", mo.None[string](), false), ShouldBeNil)
			So(session.Running(), ShouldBeTrue)
			So(engine.launched, ShouldResemble, []string{"a.mp4"})
		})

		Convey("Stops the previous process before launching the next", func() {
			So(session.Start("a.mp4", mo.None[string](), false), ShouldBeNil)
			first := engine.last()

			So(session.Start("b.mp4", mo.None[string](), false), ShouldBeNil)
			So(first.wasTerminated(), ShouldBeTrue)
			So(first.HasExited(), ShouldBeTrue)
			So(engine.last().HasExited(), ShouldBeFalse)
		})

		Convey("Records the loop flag", func() {
			So(session.Start("welcome.mp4", mo.None[string](), true), ShouldBeNil)
			So(session.Looping(), ShouldBeTrue)

			So(session.Start("ep.mp4", mo.None[string](), false), ShouldBeNil)
			So(session.Looping(), ShouldBeFalse)
		})
	})
}

func TestSessionStop(t *testing.T) {
	Convey("Session Stop", t, func() {
		engine := &fakeEngine{}
		session := NewSession(engine, 50*time.Millisecond)

		Convey("Is a no-op with nothing running", func() {
			session.Stop()
			So(session.Running(), ShouldBeFalse)
		})

		Convey("Is idempotent", func() {
			So(session.Start("a.mp4", mo.None[string](), false), ShouldBeNil)
			session.Stop()
			session.Stop()
			So(session.Running(), ShouldBeFalse)
		})

		Convey("Treats an already exited process as stopped", func() {
			So(session.Start("a.mp4", mo.None[string](), false), ShouldBeNil)
			handle := engine.last()
			handle.exit()

			session.Stop()
			So(handle.wasTerminated(), ShouldBeFalse)
			So(handle.wasKilled(), ShouldBeFalse)
		})

		Convey("Escalates to kill after the grace window", func() {
			So(session.Start("a.mp4", mo.None[string](), false), ShouldBeNil)
			handle := engine.last()
			handle.ignoreSignals = true

			session.Stop()
			So(handle.wasTerminated(), ShouldBeTrue)
			So(handle.wasKilled(), ShouldBeTrue)
			So(session.Running(), ShouldBeFalse)
		})
	})
}

func TestSessionReap(t *testing.T) {
	Convey("Session Reap", t, func() {
		engine := &fakeEngine{}
		session := NewSession(engine, 50*time.Millisecond)

		Convey("False while the process is alive", func() {
			So(session.Start("a.mp4", mo.None[string](), false), ShouldBeNil)
			So(session.Reap(), ShouldBeFalse)
		})

		Convey("True exactly once after a natural exit", func() {
			So(session.Start("a.mp4", mo.None[string](), false), ShouldBeNil)
			engine.last().exit()

			So(session.Reap(), ShouldBeTrue)
			So(session.Reap(), ShouldBeFalse)
		})

		Convey("False for a loop-mode exit", func() {
			So(session.Start("welcome.mp4", mo.None[string](), true), ShouldBeNil)
			engine.last().exit()
			So(session.Reap(), ShouldBeFalse)
		})

		Convey("False after an explicit stop", func() {
			So(session.Start("a.mp4", mo.None[string](), false), ShouldBeNil)
			session.Stop()
			So(session.Reap(), ShouldBeFalse)
		})
	})
}

func TestSessionDone(t *testing.T) {
	Convey("Session Done", t, func() {
		engine := &fakeEngine{}
		session := NewSession(engine, 50*time.Millisecond)

		Convey("Already closed with nothing running", func() {
			select {
			case <-session.Done():
			case <-time.After(time.Second):
				So("timed out", ShouldBeEmpty)
			}
		})

		Convey("Closes when the process exits", func() {
			So(session.Start("a.mp4", mo.None[string](), false), ShouldBeNil)
			done := session.Done()

			select {
			case <-done:
				So("closed too early", ShouldBeEmpty)
			default:
			}

			engine.last().exit()
			select {
			case <-done:
			case <-time.After(time.Second):
				So("timed out", ShouldBeEmpty)
			}
		})
	})
}
