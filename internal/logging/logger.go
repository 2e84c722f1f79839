// Package logging is the structured-logging seam shared by the client and
// the authenticator server. SlogLogger is the only implementation.
package logging

import "context"

// Logger takes alternating key/value args after the message:
//
//	logger.Warn(ctx, "remote logout failed", "error", err)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that adds args to every record.
	With(args ...any) Logger
}
