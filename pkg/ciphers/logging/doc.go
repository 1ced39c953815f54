// Package logging is the log/slog front the cipher tooling writes through.
//
// The cipher packages themselves never log; they are pure functions. Logging
// happens in the layers above them: the operation registry, pipelines, recipe
// stores and the command-line front-end. Those layers accept a Logger, which
// wraps a subset of log/slog:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// New(nil) binds to slog.Default(); Discard() drops everything.
//
// # Redaction
//
// Keys and message text are secrets for the purposes of logging, even for
// ciphers this weak. Never pass them as attribute values. Use Redacted to
// note that a value was withheld, or a Fingerprinter to let records from one
// process be correlated by key:
//
//	fp := logging.NewFingerprinter()
//	logger.Debug(ctx, "step applied",
//	    "operation", op.Name(),
//	    logging.Redacted("key"),
//	    fp.Attr("key_id", key),
//	)
//
// Fingerprints are keyed with a random secret; an unkeyed hash of a Caesar
// shift or rail count could be reversed by trying every key.
package logging
