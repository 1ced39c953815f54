// Package columnar implements the columnar transposition cipher.
//
// The key is a string of decimal digits forming a permutation of 1..n, for
// example "2143". The plaintext is written row by row into a grid n columns
// wide, then the columns are emitted one after another: the i-th run of the
// ciphertext is the column numbered by the i-th key digit.
//
// Characters are never changed, only moved. Spaces and punctuation take part
// in the transposition like any letter. The grid stores runes, so multi-byte
// text round-trips intact.
//
// Keys with repeated, missing, zero or non-digit characters are rejected with
// ciphers.ErrInvalidColumnarTranspositionKey, as is the empty key.
//
//	ct, _ := columnar.Encrypt("SECRET", "2143") // "ETSERC"
//	pt, _ := columnar.Decrypt(ct, "2143")       // "SECRET"
package columnar
