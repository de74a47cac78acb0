// Package logging is the client's logging seam. Services log degradations
// (failed photo map, unusable profile photo) through the Logger interface
// instead of writing to the user's terminal, keeping REPL output and
// diagnostics separate.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs:
//
//	log.Warn(ctx, "photo map unavailable", "error", err)
type Logger interface {
	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a degradation the user still gets a working result for.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}
