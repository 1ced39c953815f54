package registry

import (
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers"
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/caesar"
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/columnar"
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/monoalphabetic"
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/railfence"
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/vernam"
)

// Cipher family names.
const (
	Caesar                = "caesar"
	ColumnarTransposition = "columnar_transposition"
	MonoAlphabetic        = "mono_alphabetic"
	RailFence             = "rail_fence"
	Vernam                = "vernam"
)

// Builtin returns the encrypt and decrypt operations of every cipher in this
// module.
func Builtin() []Operation {
	var ops []Operation
	add := func(enc, dec Operation) { ops = append(ops, enc, dec) }

	add(pair(Caesar, "Caesar shift cipher (key: shift 1-25)",
		intKey(caesar.Encrypt, ciphers.KindInvalidCaesarKey, "caesar.Encrypt"),
		intKey(caesar.Decrypt, ciphers.KindInvalidCaesarKey, "caesar.Decrypt"),
		intValidator(caesar.ValidateKey, ciphers.KindInvalidCaesarKey, "caesar.ValidateKey"),
	))

	add(pair(ColumnarTransposition, "columnar transposition cipher (key: digit permutation of 1..n)",
		columnar.Encrypt,
		columnar.Decrypt,
		func(_, key string) error {
			_, err := columnar.ValidateKey(key)
			return err
		},
	))

	add(pair(MonoAlphabetic, "mono-alphabetic substitution cipher (key: all 26 letters)",
		monoalphabetic.Encrypt,
		monoalphabetic.Decrypt,
		func(_, key string) error {
			_, err := monoalphabetic.ValidateKey(key)
			return err
		},
	))

	add(pair(RailFence, "rail fence cipher (key: rail count > 1)",
		intKey(railfence.Encrypt, ciphers.KindInvalidRailFenceKey, "railfence.Encrypt"),
		intKey(railfence.Decrypt, ciphers.KindInvalidRailFenceKey, "railfence.Decrypt"),
		intValidator(railfence.ValidateKey, ciphers.KindInvalidRailFenceKey, "railfence.ValidateKey"),
	))

	add(pair(Vernam, "Vernam running-key cipher (key: same letter count as the text)",
		vernam.Encrypt,
		vernam.Decrypt,
		func(input, key string) error {
			_, err := vernam.ValidateKey(input, key)
			return err
		},
	))

	return ops
}
