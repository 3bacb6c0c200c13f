// Package logger wraps zerolog with component-tagged loggers for secretkit.
//
// Diagnostics go to stderr by default so that stdout stays clean for
// resolved secret values. Use Redact before logging anything that might
// contain a secret.
package logger
