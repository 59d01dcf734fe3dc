package jukebox

import (
	"time"

	"github.com/samber/mo"
	"github.com/tvjuke-cli/tvjuke/history"
	"github.com/tvjuke-cli/tvjuke/log"
	"github.com/tvjuke-cli/tvjuke/player"
)

// Watchdog polls for the natural end of a non-loop playback and auto-advances
// to the next clip of the active shuffle mode. It never acts while the
// welcome loop plays: loop-mode exits are not reapable, and idle mode is
// skipped outright.
type Watchdog struct {
	session  *player.Session
	ctrl     *Controller
	interval time.Duration
}

// NewWatchdog creates a Watchdog polling at the given interval.
func NewWatchdog(session *player.Session, ctrl *Controller, interval time.Duration) *Watchdog {
	return &Watchdog{session: session, ctrl: ctrl, interval: interval}
}

// Run polls until done closes. Shutdown latency is bounded by one interval.
func (w *Watchdog) Run(done <-chan struct{}) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			w.tick()
		}
	}
}

func (w *Watchdog) tick() {
	if w.ctrl.Mode() == ModeIdle {
		return
	}
	if !w.session.Reap() {
		return
	}

	log.Info("video ended, starting next episode")
	next, ok := w.ctrl.PickNext().Get()
	if !ok {
		log.Warnf("no episodes to advance to in %s mode", w.ctrl.Mode())
		return
	}
	if err := w.session.Start(next.Path, mo.Some(w.ctrl.Caption()), false); err != nil {
		log.Errorf("auto-advance playback: %v", err)
		return
	}
	if err := history.Save(next); err != nil {
		log.Warnf("record play history: %v", err)
	}
}
