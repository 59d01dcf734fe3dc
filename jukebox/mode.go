// Package jukebox implements the button-driven playback state machine: the
// current shuffle mode, the end-of-playback watchdog, the idle welcome loop
// and the session loop binding them to the input device.
package jukebox

// Mode represents the active playback mode.
type Mode int

const (
	ModeIdle Mode = iota // welcome video looping, nothing selected
	ModeShow             // shuffling one show's episodes
	ModeAll              // shuffling the union of all shows
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeShow:
		return "show-shuffle"
	case ModeAll:
		return "all-shuffle"
	default:
		return "unknown"
	}
}

// Outcome is the result of one jukebox session.
type Outcome int

const (
	// OutcomeRestart ends a session that should be followed by a fresh one.
	OutcomeRestart Outcome = iota
	// OutcomeFatal ends the program; the controller cannot continue.
	OutcomeFatal
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRestart:
		return "restart"
	case OutcomeFatal:
		return "fatal"
	default:
		return "unknown"
	}
}
