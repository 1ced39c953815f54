// Package monoalphabetic implements simple substitution with a fixed
// 26-letter key alphabet.
//
// The key pairs positionally with the canonical alphabet: the first letter of
// the key replaces A, the second replaces B, and so on. A key is normalized to
// its distinct letters in order of first appearance, case folded, so
// "azerty..." and "AZERTY..." are the same key, and a longer key that repeats
// letters is accepted as long as every letter of the alphabet appears
// somewhere in it.
//
// Output letters are uppercase. Unlike the Caesar cipher, characters without
// an entry in the substitution table (spaces, digits, punctuation, non-ASCII
// runes) are dropped from the output.
//
//	ct, _ := monoalphabetic.Encrypt("SECRET", "AZERTYUIOPQSDFGHJKLMWXCVBN") // "LTEKTM"
package monoalphabetic
