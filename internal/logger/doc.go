// Package logger wraps zap with a global sugared logger, level parsing and
// context helpers (ToContext/FromContext/WithName/WithKV).
//
// Logs are written to stderr so that command output on stdout stays clean.
package logger
