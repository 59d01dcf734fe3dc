package jukebox

import (
	"math/rand"
	"sync"
	"time"

	"github.com/samber/mo"
	"github.com/tvjuke-cli/tvjuke/library"
	"github.com/tvjuke-cli/tvjuke/log"
)

// Controller holds the current playback mode and selects the next clip for
// it. Mode transitions are last-writer-wins and atomic with respect to
// concurrent watchdog reads.
type Controller struct {
	lib *library.Index

	mu   sync.Mutex
	mode Mode
	show string
	rng  *rand.Rand
}

// NewController creates a Controller in idle mode.
func NewController(lib *library.Index) *Controller {
	return &Controller{
		lib: lib,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetIdle returns the controller to the idle welcome mode.
func (c *Controller) SetIdle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeIdle
	c.show = ""
}

// SetShow switches to shuffling a single show.
func (c *Controller) SetShow(show string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeShow
	c.show = show
}

// SetAll switches to shuffling across every show.
func (c *Controller) SetAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeAll
	c.show = ""
}

// Mode returns the active playback mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Caption returns the on-screen overlay text for the active mode.
func (c *Controller) Caption() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.mode {
	case ModeShow:
		return "|SHUFFLE| " + c.show
	case ModeAll:
		return "|SHUFFLE| ALL SHOWS"
	default:
		return ""
	}
}

// PickNext selects a uniformly random clip for the active mode: an idle
// clip when idle, an episode of the selected show in show mode, and an
// episode from the union of all shows in all mode. Returns None when the
// relevant pool is empty.
func (c *Controller) PickNext() mo.Option[library.Media] {
	c.mu.Lock()
	mode, show := c.mode, c.show
	c.mu.Unlock()

	var (
		candidates []library.Media
		err        error
	)
	switch mode {
	case ModeShow:
		candidates, err = c.lib.Episodes(show)
	case ModeAll:
		candidates, err = c.lib.AllEpisodes()
	default:
		candidates, err = c.lib.IdlePool()
	}

	if err != nil {
		log.Errorf("scan library for %s: %v", mode, err)
		return mo.None[library.Media]()
	}
	if len(candidates) == 0 {
		return mo.None[library.Media]()
	}

	c.mu.Lock()
	pick := candidates[c.rng.Intn(len(candidates))]
	c.mu.Unlock()
	return mo.Some(pick)
}
