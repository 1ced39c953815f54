package ciphers

import (
	"errors"
	"fmt"
)

// Kind identifies which key-validation rule was violated.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidCaesarKey
	KindInvalidColumnarTranspositionKey
	KindInvalidMonoAlphabeticKey
	KindInvalidRailFenceKey
	KindInvalidVernamKey
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidCaesarKey:
		return "InvalidCaesarKey"
	case KindInvalidColumnarTranspositionKey:
		return "InvalidColumnarTranspositionKey"
	case KindInvalidMonoAlphabeticKey:
		return "InvalidMonoAlphabeticKey"
	case KindInvalidRailFenceKey:
		return "InvalidRailFenceKey"
	case KindInvalidVernamKey:
		return "InvalidVernamKey"
	default:
		return "Unknown"
	}
}

func (k Kind) message() string {
	switch k {
	case KindInvalidCaesarKey:
		return "key must be a positive integer between 1 and 25"
	case KindInvalidColumnarTranspositionKey:
		return "key must be a string of integers of range 1 to n, where n is the length of the key itself, in an arbitrary order"
	case KindInvalidMonoAlphabeticKey:
		return "key must contain all 26 unique alphabets"
	case KindInvalidRailFenceKey:
		return "key must be a positive integer and bigger than 1"
	case KindInvalidVernamKey:
		return "key must have the same number of letters as the input"
	default:
		return "unknown error"
	}
}

// Sentinel errors, one per Kind. Use errors.Is to match an *Error against them.
var (
	ErrInvalidCaesarKey                = errors.New("ciphers: invalid caesar key")
	ErrInvalidColumnarTranspositionKey = errors.New("ciphers: invalid columnar transposition key")
	ErrInvalidMonoAlphabeticKey        = errors.New("ciphers: invalid mono-alphabetic key")
	ErrInvalidRailFenceKey             = errors.New("ciphers: invalid rail fence key")
	ErrInvalidVernamKey                = errors.New("ciphers: invalid vernam key")
)

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidCaesarKey:
		return ErrInvalidCaesarKey
	case KindInvalidColumnarTranspositionKey:
		return ErrInvalidColumnarTranspositionKey
	case KindInvalidMonoAlphabeticKey:
		return ErrInvalidMonoAlphabeticKey
	case KindInvalidRailFenceKey:
		return ErrInvalidRailFenceKey
	case KindInvalidVernamKey:
		return ErrInvalidVernamKey
	default:
		return nil
	}
}

// Error is the single error type returned by every cipher package.
type Error struct {
	Kind Kind   // Which rule was violated
	Op   string // Operation that failed, e.g. "caesar.Encrypt"
}

// NewError returns an *Error of the given kind for op.
func NewError(kind Kind, op string) *Error {
	return &Error{Kind: kind, Op: op}
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Kind.message()
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind.message())
}

// Is reports whether target is the sentinel for e.Kind, or an *Error of the
// same Kind.
func (e *Error) Is(target error) bool {
	if s := e.Kind.sentinel(); s != nil && target == s {
		return true
	}
	var other *Error
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}
	return false
}

// KindOf returns the Kind carried by err, or KindUnknown if err is not a
// cipher error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
