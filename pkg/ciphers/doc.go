// Package ciphers is the root of a small library of classical text ciphers.
//
// None of these ciphers offer any real security. They exist for teaching,
// puzzles and interoperability with legacy tooling.
//
// # Ciphers
//
// Each cipher lives in its own subpackage and exposes the same triad:
//
//   - caesar: additive shift, key 1 to 25
//   - columnar: columnar transposition, key is a digit permutation of 1..n
//   - monoalphabetic: substitution over a 26-letter key alphabet
//   - railfence: zig-zag transposition, key is the rail count (> 1)
//   - vernam: running-key addition, key letter count must match the text
//
// Example:
//
//	ct, err := caesar.Encrypt("SECRET TEXT.", 3)
//	if err != nil {
//	    return err
//	}
//	// ct == "VHFUHW WHAW."
//
// # Errors
//
// Every cipher fails only on a rejected key, and always before transforming
// any input. Failures are reported as *Error values carrying a Kind; match
// them with errors.Is against the exported sentinels:
//
//	if errors.Is(err, ciphers.ErrInvalidCaesarKey) {
//	    // ...
//	}
//
// # Character handling
//
// Only the 26 ASCII letters are enciphered. How other characters are treated
// differs per cipher and is documented in each subpackage: Caesar passes them
// through, Mono-Alphabetic and Vernam drop them, the transposition ciphers
// move them along with the letters.
//
// # Concurrency
//
// All functions are pure and safe for concurrent use.
package ciphers
