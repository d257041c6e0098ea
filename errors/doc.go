// Package errors defines the error values returned by ergolog's configuration
// and validation layers. Logging itself never fails; only building a logger
// from invalid settings does.
package errors
