// Package alphabet holds the fixed 26-letter table shared by the ciphers.
package alphabet

// Letters is the canonical alphabet. Position i maps to Letters[i].
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Size is the number of letters in the alphabet.
const Size = len(Letters)

// Index returns the zero-based position of r, folding lowercase ASCII to
// uppercase. ok is false for anything outside A-Z and a-z.
func Index(r rune) (pos int, ok bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), true
	default:
		return 0, false
	}
}

// Letter returns the uppercase letter at pos, reduced modulo Size.
func Letter(pos int) byte {
	pos %= Size
	if pos < 0 {
		pos += Size
	}
	return Letters[pos]
}

// IsLetter reports whether r is an ASCII letter.
func IsLetter(r rune) bool {
	_, ok := Index(r)
	return ok
}

// Count returns the number of ASCII letters in s.
func Count(s string) int {
	n := 0
	for _, r := range s {
		if IsLetter(r) {
			n++
		}
	}
	return n
}

// Positions returns the alphabet position of every ASCII letter in s, in
// order, skipping all other characters.
func Positions(s string) []int {
	out := make([]int, 0, len(s))
	for _, r := range s {
		if pos, ok := Index(r); ok {
			out = append(out, pos)
		}
	}
	return out
}
