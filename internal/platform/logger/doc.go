// Package logger provides structured logging for the application, built on
// log/slog with a JSON handler. A request-scoped logger travels in the
// context so that handlers, services and stores share trace attributes.
package logger
