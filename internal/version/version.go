package version

import "fmt"

// Name is the product name reported by the CLI and the Server header.
const Name = "httpintake"

var (
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
)

func GetVersion() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", Name, GetShortVersion(), Commit, BuildDate)
}

// GetShortVersion falls back to "dev" when the build left Version empty.
func GetShortVersion() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

// ServerToken is the product token sent in the Server response header.
func ServerToken() string {
	return Name + "/" + GetShortVersion()
}
