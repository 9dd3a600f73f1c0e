// Package logging provides the structured logger shared by the server
// packages. The interface is deliberately small so handlers and services can
// be tested with a no-op implementation.
package logging

// Logger emits structured records at the usual levels. The variadic args are
// alternating key-value pairs:
//
//	log.Info("starting app", "addr", addr)
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With returns a child logger whose records always carry the given
	// key-value pairs.
	With(args ...any) Logger
}
