// Package caesar implements the Caesar additive shift cipher.
//
// Each ASCII letter, case-insensitively, is replaced by the letter shift
// positions further along the alphabet, wrapping from Z back to A. Output
// letters are always uppercase. Every other character, including spaces,
// digits and non-ASCII runes, is copied to the output unchanged.
//
// Valid shifts are 1 through 25. Shifts 0 and 26 would be the identity and are
// rejected with ciphers.ErrInvalidCaesarKey.
//
//	ct, _ := caesar.Encrypt("SECRET TEXT.", 3) // "VHFUHW WHAW."
//	pt, _ := caesar.Decrypt(ct, 3)             // "SECRET TEXT."
package caesar
