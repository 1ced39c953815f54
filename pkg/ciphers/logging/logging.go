package logging

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"log/slog"
)

const redactedPlaceholder = "[redacted]"

// Logger is what the registry, recipe store and CLI log through. Every method
// takes the context of the cipher call being logged.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New wraps logger. A nil logger means whatever slog.Default() is at the time
// of the call.
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

// Discard returns a Logger that drops every record.
func Discard() Logger {
	return &slogLogger{logger: slog.New(discardHandler{})}
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// Redacted marks an attribute whose value was intentionally left out. Cipher
// keys and plaintext must never be logged; put this in their place.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

// Placeholder is the value Redacted writes, for tests that check a key was
// withheld.
func Placeholder() string {
	return redactedPlaceholder
}

// Fingerprinter derives short key identifiers under a random secret drawn at
// construction. Identifiers are stable for one Fingerprinter and unrelated
// across Fingerprinters, so a log reader cannot test candidate keys against
// them offline. Small key spaces (25 Caesar shifts) make an unkeyed digest
// trivially invertible.
type Fingerprinter struct {
	secret [32]byte
}

// NewFingerprinter returns a Fingerprinter with a fresh random secret.
func NewFingerprinter() *Fingerprinter {
	f := &Fingerprinter{}
	// crypto/rand.Read does not return an error on supported platforms.
	_, _ = rand.Read(f.secret[:])
	return f
}

// Attr returns an attribute named name holding the identifier of key.
func (f *Fingerprinter) Attr(name, key string) slog.Attr {
	mac := hmac.New(sha256.New, f.secret[:])
	mac.Write([]byte(key))
	sum := mac.Sum(nil)
	return slog.String(name, base64.RawURLEncoding.EncodeToString(sum[:9]))
}
