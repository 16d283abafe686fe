// Package logger builds configured slog.Logger instances with sensible
// per-environment defaults: human-readable text at debug level for
// development, JSON at info level everywhere else. Output goes to stderr so
// command output on stdout stays clean.
package logger
