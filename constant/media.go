package constant

// MediaExtensions is the set of file extensions treated as playable video.
// Matching is case-insensitive.
var MediaExtensions = []string{".mp4", ".mkv", ".avi"}

// Library subdirectory names. The welcome pool loops while the jukebox is
// idle; the error pool supplies the clip shown on fatal startup failures.
const (
	ShowsDir   = "shows"
	WelcomeDir = "welcome-videos"
	ErrorDir   = "error-videos"
)
