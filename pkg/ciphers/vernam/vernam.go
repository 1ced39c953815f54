// Package vernam implements a running-key additive cipher over the letters of
// a message.
//
// Only letters take part: the key's letters and the text's letters are paired
// in order, and every other character in either string is skipped. The key
// must therefore contain exactly as many letters as the text, though the raw
// lengths may differ. The output holds one uppercase letter per text letter;
// spaces and punctuation do not survive.
//
//	ct, _ := vernam.Encrypt("SECRET", "LONGER") // "DSPXIK"
//	pt, _ := vernam.Decrypt(ct, "LONGER")       // "SECRET"
//
// This is not a one-time pad. Reusing a key, or using a key with any
// structure, makes the ciphertext trivially breakable.
package vernam

import (
	"strings"

	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers"
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/internal/alphabet"
)

// ValidateKey checks that key has as many letters as text and returns the
// alphabet positions of the key's letters.
func ValidateKey(text, key string) ([]int, error) {
	return parseKey(text, key, "vernam.ValidateKey")
}

// Encrypt adds each key letter to the matching plaintext letter modulo 26.
func Encrypt(plaintext, key string) (string, error) {
	k, err := parseKey(plaintext, key, "vernam.Encrypt")
	if err != nil {
		return "", err
	}
	return combine(alphabet.Positions(plaintext), k, 1), nil
}

// Decrypt subtracts each key letter from the matching ciphertext letter
// modulo 26.
func Decrypt(ciphertext, key string) (string, error) {
	k, err := parseKey(ciphertext, key, "vernam.Decrypt")
	if err != nil {
		return "", err
	}
	return combine(alphabet.Positions(ciphertext), k, -1), nil
}

func parseKey(text, key, op string) ([]int, error) {
	if alphabet.Count(text) != alphabet.Count(key) {
		return nil, ciphers.NewError(ciphers.KindInvalidVernamKey, op)
	}
	return alphabet.Positions(key), nil
}

func combine(text, key []int, sign int) string {
	var b strings.Builder
	b.Grow(len(text))
	for i, p := range text {
		b.WriteByte(alphabet.Letter(p + sign*key[i]))
	}
	return b.String()
}
