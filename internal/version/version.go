// Package version holds the build version string, overridable at link
// time via -ldflags.
package version

// Version is the current release version.
var Version = "dev"
