// Package config defines the settings shared by the person-profile binaries and
// provides helpers to load, validate and save them in YAML format.
//
// Config carries the gRPC server address and timeout, the optional roster file,
// the log level and the current year used when a birth year is omitted.
package config
