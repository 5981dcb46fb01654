// Package describe renders a single person given on the command line,
// either locally or through a remote person server.
package describe
