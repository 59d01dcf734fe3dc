package player

import (
	"fmt"
	"os/exec"
	"sync"

	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/tvjuke-cli/tvjuke/key"
	"github.com/tvjuke-cli/tvjuke/log"
	"github.com/tvjuke-cli/tvjuke/util"
)

// VLC implements Engine by spawning the VLC command-line player (cvlc).
type VLC struct {
	bin  string
	gain int
	aout string
}

// NewVLC creates a VLC engine from global configuration.
func NewVLC() *VLC {
	return &VLC{
		bin:  viper.GetString(key.PlayerCommand),
		gain: viper.GetInt(key.PlayerGain),
		aout: viper.GetString(key.PlayerAudioOutput),
	}
}

// Launch starts cvlc against the given file and reaps it in the background.
func (v *VLC) Launch(path string, caption mo.Option[string], loop bool) (Handle, error) {
	args := v.args(path, caption, loop)

	cmd := exec.Command(v.bin, args...)
	cmd.SysProcAttr = sysProcAttr()

	// No pipes; the engine renders straight to the display.
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", v.bin, err)
	}
	log.Debugf("launched %s pid=%d file=%s loop=%t", v.bin, cmd.Process.Pid, path, loop)

	h := &proc{cmd: cmd, exited: make(chan struct{})}
	go func() {
		_ = cmd.Wait()
		close(h.exited)
	}()
	return h, nil
}

// args builds the cvlc argument list. Looping idle playback repeats
// silently; single-shot playback exits when the clip ends and overlays the
// caption as a marquee.
func (v *VLC) args(path string, caption mo.Option[string], loop bool) []string {
	args := []string{
		"--fullscreen", "--quiet", "--video-on-top",
		fmt.Sprintf("--gain=%d", v.gain),
		"--no-video-title-show",
		"--intf", "dummy",
		"--aout", v.aout,
		"--no-sub-autodetect-file", "--no-spu",
		"--play-and-exit",
		path,
	}

	if loop {
		return append(args, "--loop")
	}

	marquee := caption.OrElse(util.FileStem(path))
	return append(args,
		"--sub-source=marq",
		fmt.Sprintf("--marq-marquee=%s", marquee),
		"--marq-timeout=2000",
		"--marq-position=0",
		"--marq-size=0",
		"--marq-opacity=255",
		"--marq-color=0xFFFFFF",
	)
}

// proc is the Handle for a spawned playback process.
type proc struct {
	cmd    *exec.Cmd
	exited chan struct{}

	killOnce sync.Once
}

func (p *proc) HasExited() bool {
	select {
	case <-p.exited:
		return true
	default:
		return false
	}
}

func (p *proc) Terminate() error {
	if p.HasExited() {
		return nil
	}
	return terminateProcess(p.cmd)
}

func (p *proc) Kill() error {
	var err error
	p.killOnce.Do(func() {
		err = killProcess(p.cmd)
	})
	return err
}

func (p *proc) Wait() <-chan struct{} {
	return p.exited
}
