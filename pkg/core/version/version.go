package version

// Version constants
const (
	// Library version
	Platform = "0.2.0"

	// Component versions
	Timex  = "0.2.0"
	Slots  = "0.1.0"
	Todctl = "0.1.0"
)

// Build metadata, set via -ldflags at build time
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "timex":
		return Timex
	case "slots":
		return Slots
	case "todctl":
		return Todctl
	default:
		return Platform
	}
}
