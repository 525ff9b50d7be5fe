// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. Records go to stderr so that they never mix with the
// prompts and answers exchanged with the user on stdout.
package logger
