// Package player drives the external video playback engine.
//
// It launches one child process per clip and owns the single-active-process
// session used by the rest of the jukebox.
package player

import "github.com/samber/mo"

// Engine launches the playback process for a media file.
type Engine interface {
	// Launch starts playback of the file at path. With loop set the clip
	// repeats until the process is stopped; otherwise the engine exits on
	// its own when the clip ends, showing the caption as an overlay.
	Launch(path string, caption mo.Option[string], loop bool) (Handle, error)
}

// Handle controls one running playback process.
type Handle interface {
	// HasExited reports whether the process has terminated.
	HasExited() bool

	// Terminate requests a graceful shutdown.
	Terminate() error

	// Kill forcefully ends the process.
	Kill() error

	// Wait returns a channel that is closed when the process exits.
	Wait() <-chan struct{}
}
