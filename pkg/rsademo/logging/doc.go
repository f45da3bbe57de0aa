// Package logging provides the small logging facade used by the key
// generator and the demo command.
//
// The Logger interface wraps the context-aware subset of log/slog:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// New(nil) binds to slog.Default(); Discard drops everything, which is what
// most tests want.
//
// # Redaction
//
// Private exponents must never reach a log line. Use Redacted to record that
// a value existed without printing it:
//
//	logger.Info(ctx, "key pair ready", "modulus_bits", n.BitLen(), logging.Redacted("d"))
//	// Logs: d="[redacted]"
package logging
