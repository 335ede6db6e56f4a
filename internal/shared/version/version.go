// Package version reports the build version of the binary.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Set at build time with -ldflags "-X github.com/garagehq/shopapi/internal/shared/version.Version=v1.2.3".
var (
	Version = "dev"
	Commit  = "unknown"
)

// Normalize ensures version string has a "v" prefix.
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// String returns the canonical semver of the build, or the raw value for
// development builds.
func String() string {
	v := Normalize(Version)
	if semver.IsValid(v) {
		return semver.Canonical(v)
	}
	return Version
}

// IsRelease reports whether the binary was built from a tagged, non
// prerelease version.
func IsRelease() bool {
	v := Normalize(Version)
	return semver.IsValid(v) && semver.Prerelease(v) == ""
}
