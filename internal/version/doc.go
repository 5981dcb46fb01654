// Package version exposes build metadata injected via ldflags.
package version
