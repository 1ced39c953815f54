package monoalphabetic

import (
	"strings"

	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers"
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/internal/alphabet"
)

// Key is a normalized substitution alphabet: Key[i] replaces the i-th
// canonical letter.
type Key [alphabet.Size]byte

// String returns the substitution alphabet as 26 uppercase letters.
func (k Key) String() string {
	return string(k[:])
}

// encryptTable maps canonical positions to substitute letters.
func (k Key) encryptTable() [alphabet.Size]byte {
	return k
}

// decryptTable maps substitute positions back to canonical letters.
func (k Key) decryptTable() [alphabet.Size]byte {
	var inv [alphabet.Size]byte
	for i, c := range k {
		inv[c-'A'] = alphabet.Letter(i)
	}
	return inv
}

// ValidateKey collects the distinct letters of key, case folded, in order of
// first appearance. The key is accepted when all 26 letters occur; other
// characters and repeats are ignored.
func ValidateKey(key string) (Key, error) {
	return parseKey(key, "monoalphabetic.ValidateKey")
}

// Encrypt replaces every letter of plaintext with its substitute. Characters
// outside A-Z (after case folding) have no substitute and are dropped.
func Encrypt(plaintext, key string) (string, error) {
	k, err := parseKey(key, "monoalphabetic.Encrypt")
	if err != nil {
		return "", err
	}
	return substitute(plaintext, k.encryptTable()), nil
}

// Decrypt maps every letter of ciphertext back through the inverse
// substitution. Characters outside A-Z are dropped.
func Decrypt(ciphertext, key string) (string, error) {
	k, err := parseKey(key, "monoalphabetic.Decrypt")
	if err != nil {
		return "", err
	}
	return substitute(ciphertext, k.decryptTable()), nil
}

func parseKey(key, op string) (Key, error) {
	var (
		k    Key
		seen [alphabet.Size]bool
		n    int
	)
	for _, r := range key {
		pos, ok := alphabet.Index(r)
		if !ok || seen[pos] {
			continue
		}
		seen[pos] = true
		k[n] = alphabet.Letter(pos)
		n++
		if n == alphabet.Size {
			return k, nil
		}
	}
	return Key{}, ciphers.NewError(ciphers.KindInvalidMonoAlphabeticKey, op)
}

func substitute(s string, table [alphabet.Size]byte) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if pos, ok := alphabet.Index(r); ok {
			b.WriteByte(table[pos])
		}
	}
	return b.String()
}
