// Package version holds build identification stamped in via ldflags.
package version

var (
	// Version is the release tag, or "dev" for local builds
	Version = "dev"
	// GitSHA is the git commit the binary was built from
	GitSHA = "unknown"
)

// String returns the version with the commit appended when known.
func String() string {
	if GitSHA == "unknown" {
		return Version
	}
	return Version + " (" + GitSHA + ")"
}
