// Package version reports build information for the ergolog command.
//
// Version, commit and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/ergolog/version.Version=1.0.0" ./cmd/ergolog
//
// Anything left unset is filled in from the VCS stamp of the binary.
package version
