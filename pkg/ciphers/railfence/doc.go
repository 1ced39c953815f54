// Package railfence implements the rail fence zig-zag transposition cipher.
//
// Text is written diagonally down and up across a number of rails, then read
// off one rail at a time. Every character, letter or not, is moved but never
// altered, and case is preserved. Rail counts below 2 are rejected with
// ciphers.ErrInvalidRailFenceKey.
//
//	ct, _ := railfence.Encrypt("SECRET", 3) // "SEERTC"
//	pt, _ := railfence.Decrypt(ct, 3)       // "SECRET"
package railfence
