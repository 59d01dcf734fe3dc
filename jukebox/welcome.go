package jukebox

import (
	"time"

	"github.com/samber/mo"
	"github.com/tvjuke-cli/tvjuke/log"
)

// welcomeLoop keeps a random welcome clip looping while the jukebox is
// idle. The clip plays in loop mode, so one start per idle period normally
// suffices; the poll restarts it if the player dies unexpectedly. The loop
// exits as soon as the mode leaves idle or done closes.
func (j *Jukebox) welcomeLoop(done <-chan struct{}) {
	for {
		if j.ctrl.Mode() != ModeIdle {
			return
		}
		select {
		case <-done:
			return
		default:
		}

		if clip, ok := j.ctrl.PickNext().Get(); ok {
			log.Infof("selected welcome video: %s", clip.Path)
			if err := j.session.Start(clip.Path, mo.None[string](), true); err != nil {
				log.Errorf("start welcome video: %v", err)
			}
		} else {
			log.Warn("no welcome videos found")
		}

		// Hold here while the clip loops; wake once per interval to notice
		// mode changes, shutdown, or a dead player. The wait also paces
		// retries when the pool is empty.
		for {
			select {
			case <-done:
				return
			case <-time.After(j.interval):
			}
			if !j.session.Running() || j.ctrl.Mode() != ModeIdle {
				break
			}
		}
	}
}
