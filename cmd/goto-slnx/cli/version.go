// cmd/goto-slnx/cli/version.go
package cli

// Version information (set by main)
var (
	Version = "0.0.0-dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// GetVersion returns formatted version information
func GetVersion() string {
	return Version
}

// GetFullVersion returns detailed version information
func GetFullVersion() string {
	return "goto-slnx version " + Version + "\n" +
		"commit: " + Commit + "\n" +
		"built: " + Date
}
