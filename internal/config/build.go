package config

// Build information reported by the config command
const (
	Version  = "0.1.0-minimal"
	Features = "Basic CLI structure"
	Status   = "✅ Build working!"
)

// BuildInfo describes the running build
type BuildInfo struct {
	Version  string
	Features string
	Status   string
}

// GetBuildInfo returns the build information of this binary
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:  Version,
		Features: Features,
		Status:   Status,
	}
}

// DisplayVersion returns the version string shown by --version.
// Release builds stamp version via ldflags; development builds fall back
// to the built-in version.
func DisplayVersion(version, commit, date string) string {
	if version == "" || version == "dev" {
		version = Version
	}
	if commit == "" || commit == "none" {
		return version
	}
	if date == "" || date == "unknown" {
		return version + " (" + commit + ")"
	}
	return version + " (" + commit + ", " + date + ")"
}
