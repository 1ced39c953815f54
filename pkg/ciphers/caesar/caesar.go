package caesar

import (
	"strings"

	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers"
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/internal/alphabet"
)

const (
	// MinShift is the smallest accepted shift.
	MinShift = 1
	// MaxShift is the largest accepted shift.
	MaxShift = 25
)

// ValidateKey returns shift unchanged if it lies in [MinShift, MaxShift].
func ValidateKey(shift int) (int, error) {
	return validate(shift, "caesar.ValidateKey")
}

// Encrypt shifts every letter of plaintext forward by shift positions.
// Letters come out uppercase; all other characters are copied through.
func Encrypt(plaintext string, shift int) (string, error) {
	shift, err := validate(shift, "caesar.Encrypt")
	if err != nil {
		return "", err
	}
	return rotate(plaintext, shift), nil
}

// Decrypt shifts every letter of ciphertext back by shift positions.
func Decrypt(ciphertext string, shift int) (string, error) {
	shift, err := validate(shift, "caesar.Decrypt")
	if err != nil {
		return "", err
	}
	return rotate(ciphertext, alphabet.Size-shift), nil
}

func validate(shift int, op string) (int, error) {
	if shift < MinShift || shift > MaxShift {
		return 0, ciphers.NewError(ciphers.KindInvalidCaesarKey, op)
	}
	return shift, nil
}

func rotate(s string, by int) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if pos, ok := alphabet.Index(r); ok {
			b.WriteByte(alphabet.Letter(pos + by))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
