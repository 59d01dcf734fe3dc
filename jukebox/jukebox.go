package jukebox

import (
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/tvjuke-cli/tvjuke/history"
	"github.com/tvjuke-cli/tvjuke/input"
	"github.com/tvjuke-cli/tvjuke/key"
	"github.com/tvjuke-cli/tvjuke/keymap"
	"github.com/tvjuke-cli/tvjuke/library"
	"github.com/tvjuke-cli/tvjuke/log"
	"github.com/tvjuke-cli/tvjuke/player"
	"github.com/tvjuke-cli/tvjuke/press"
)

// Jukebox runs one controller session: welcome loop and watchdog in the
// background, the input device on the main loop.
type Jukebox struct {
	keys       keymap.Map
	lib        *library.Index
	ctrl       *Controller
	session    *player.Session
	classifier *press.Classifier

	devicePath string
	interval   time.Duration

	// openSource is swappable so tests can feed synthetic event streams.
	openSource func(path string) (input.Source, error)
}

// New assembles a Jukebox from global configuration.
func New() (*Jukebox, error) {
	keys, err := keymap.Load()
	if err != nil {
		return nil, err
	}

	long := secondsDuration(key.PressLongSeconds)
	longer := secondsDuration(key.PressLongerSeconds)
	classifier, err := press.New(keys.SwitchCode(), long, longer)
	if err != nil {
		return nil, err
	}

	lib := library.Open()
	session := player.NewSession(player.NewVLC(), secondsDuration(key.PlayerStopGraceSeconds))

	return &Jukebox{
		keys:       keys,
		lib:        lib,
		ctrl:       NewController(lib),
		session:    session,
		classifier: classifier,
		devicePath: viper.GetString(key.InputDevice),
		interval:   secondsDuration(key.WatchdogIntervalSeconds),
		openSource: func(path string) (input.Source, error) { return input.Open(path) },
	}, nil
}

func secondsDuration(configKey string) time.Duration {
	return time.Duration(viper.GetFloat64(configKey) * float64(time.Second))
}

// Run executes one session until a very-long switch press (OutcomeRestart)
// or a device failure (OutcomeFatal, after playing an error clip with the
// failure reason as its caption). All playback is stopped before returning.
func (j *Jukebox) Run() (Outcome, error) {
	source, err := j.openSource(j.devicePath)
	if err != nil {
		log.Errorf("acquire input device: %v", err)
		j.playErrorClip("INPUT DEVICE ERROR: " + err.Error())
		return OutcomeFatal, err
	}
	defer source.Close()

	j.ctrl.SetIdle()

	// Closed before any teardown so neither background loop restarts
	// playback underneath it.
	done := make(chan struct{})

	go j.welcomeLoop(done)
	go NewWatchdog(j.session, j.ctrl, j.interval).Run(done)

	for ev := range source.Events() {
		if j.handle(ev) {
			close(done)
			j.session.Stop()
			return OutcomeRestart, nil
		}
	}

	// The event stream ended without an exit request.
	close(done)
	j.session.Stop()
	if err := source.Err(); err != nil {
		log.Errorf("input device lost: %v", err)
		j.playErrorClip("INPUT DEVICE ERROR: " + err.Error())
		return OutcomeFatal, err
	}
	return OutcomeRestart, nil
}

// handle processes one key event and reports whether the session should end.
func (j *Jukebox) handle(ev input.Event) bool {
	if !j.keys.Mapped(ev.Code) {
		log.Debugf("unknown key code: %d", ev.Code)
		return false
	}

	if ev.Pressed {
		j.classifier.Down(ev.Code, ev.Time)
		return false
	}

	action, ok := j.classifier.Up(ev.Code, ev.Time)
	if !ok {
		return false
	}

	if j.keys.IsSwitch(action.Code) {
		return j.handleSwitch(action)
	}

	binding, ok := j.keys.Show(action.Code)
	if !ok {
		return false
	}
	show := binding.Short
	if action.Class == press.Long {
		show = binding.Long
	}

	log.Infof("key %d (%s press) selects %s", action.Code, action.Class, show)
	j.ctrl.SetShow(show)
	j.playNext()
	return false
}

// handleSwitch applies the switch-key transition table: short skips within
// the active shuffle mode, long enters all-shuffle, very-long ends the session.
func (j *Jukebox) handleSwitch(action press.Action) bool {
	switch action.Class {
	case press.VeryLong:
		log.Info("very long switch press, returning to welcome loop")
		return true
	case press.Long:
		log.Info("long switch press, shuffling all shows")
		j.ctrl.SetAll()
		j.playNext()
	default:
		// Manual skip; meaningless while idle.
		if j.ctrl.Mode() != ModeIdle {
			j.playNext()
		}
	}
	return false
}

// playNext starts the next clip of the active mode. An empty pool leaves
// the session as it is, awaiting further input.
func (j *Jukebox) playNext() {
	next, ok := j.ctrl.PickNext().Get()
	if !ok {
		log.Warnf("no episodes found in %s mode", j.ctrl.Mode())
		return
	}
	if err := j.session.Start(next.Path, mo.Some(j.ctrl.Caption()), false); err != nil {
		log.Errorf("start playback: %v", err)
		return
	}
	if err := history.Save(next); err != nil {
		log.Warnf("record play history: %v", err)
	}
}

// playErrorClip plays one clip from the error pool with the failure reason
// as its caption and waits for it to finish.
func (j *Jukebox) playErrorClip(reason string) {
	clips, err := j.lib.ErrorPool()
	if err != nil || len(clips) == 0 {
		log.Warn("no error clip available to display failure")
		return
	}

	clip := lo.Sample(clips)
	if err := j.session.Start(clip.Path, mo.Some(reason), false); err != nil {
		log.Errorf("start error clip: %v", err)
		return
	}
	<-j.session.Done()
	j.session.Stop()
}
