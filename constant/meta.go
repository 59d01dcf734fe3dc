// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// TVJuke is the canonical application identifier used for filesystem paths and CLI branding.
	TVJuke = "tvjuke"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata injected via -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
