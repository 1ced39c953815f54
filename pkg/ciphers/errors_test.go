package ciphers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMatchesSentinel(t *testing.T) {
	tests := []struct {
		kind     Kind
		sentinel error
	}{
		{KindInvalidCaesarKey, ErrInvalidCaesarKey},
		{KindInvalidColumnarTranspositionKey, ErrInvalidColumnarTranspositionKey},
		{KindInvalidMonoAlphabeticKey, ErrInvalidMonoAlphabeticKey},
		{KindInvalidRailFenceKey, ErrInvalidRailFenceKey},
		{KindInvalidVernamKey, ErrInvalidVernamKey},
	}

	all := []error{
		ErrInvalidCaesarKey,
		ErrInvalidColumnarTranspositionKey,
		ErrInvalidMonoAlphabeticKey,
		ErrInvalidRailFenceKey,
		ErrInvalidVernamKey,
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := NewError(tt.kind, "test.Op")
			assert.ErrorIs(t, err, tt.sentinel)
			for _, other := range all {
				if other != tt.sentinel {
					assert.NotErrorIs(t, err, other)
				}
			}
		})
	}
}

func TestErrorWrapped(t *testing.T) {
	err := fmt.Errorf("step 2: %w", NewError(KindInvalidRailFenceKey, "railfence.Decrypt"))

	assert.ErrorIs(t, err, ErrInvalidRailFenceKey)
	assert.ErrorIs(t, err, NewError(KindInvalidRailFenceKey, ""))
	assert.Equal(t, KindInvalidRailFenceKey, KindOf(err))

	var cerr *Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "railfence.Decrypt", cerr.Op)
}

func TestErrorMessage(t *testing.T) {
	err := NewError(KindInvalidCaesarKey, "caesar.Encrypt")
	assert.Equal(t, "caesar.Encrypt: key must be a positive integer between 1 and 25", err.Error())

	bare := NewError(KindInvalidMonoAlphabeticKey, "")
	assert.Equal(t, "key must contain all 26 unique alphabets", bare.Error())
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.Equal(t, "Unknown", KindUnknown.String())
}
