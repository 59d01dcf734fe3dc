// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 16

// Media Library - these keys locate the on-disk library of shows and the idle/error clip pools.
const (
	LibraryPath = "library.path"
)

// Input Device - these keys select the evdev button device the jukebox listens on.
const (
	InputDevice = "input.device"
)

// Press Classification - these keys set the hold-duration thresholds that
// separate short, long and very-long button presses.
const (
	PressLongSeconds   = "press.long_seconds"
	PressLongerSeconds = "press.longer_seconds"
)

// Key Bindings - these keys map physical button codes to shows and the mode-switch button.
const (
	KeymapSwitchKey = "keymap.switch_key"
	KeymapBindings  = "keymap.bindings"
)

// Playback Engine - these keys configure the external VLC process launched for each clip.
const (
	PlayerCommand          = "player.command"
	PlayerGain             = "player.gain"
	PlayerAudioOutput      = "player.audio_output"
	PlayerStopGraceSeconds = "player.stop_grace_seconds"
)

// Watchdog - these keys tune the end-of-playback poll loop.
const (
	WatchdogIntervalSeconds = "watchdog.interval_seconds"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern terminal output behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
