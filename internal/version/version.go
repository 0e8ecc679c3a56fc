// Package version holds the compiler's version string, overridable at
// link time with -ldflags "-X ...version.Version=...".
package version

// Version is the Tython compiler version.
var Version = "0.1.0-dev"
