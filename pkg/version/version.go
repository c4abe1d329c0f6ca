// Package version holds the build version of folio.
package version

// Version is overridden at build time with -ldflags "-X ...version.Version=v1.2.3".
var Version = "v0.1.0"
