package railfence

import (
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers"
)

// MinRails is the smallest accepted rail count.
const MinRails = 2

// ValidateKey returns rails unchanged if it is at least MinRails.
func ValidateKey(rails int) (int, error) {
	return validate(rails, "railfence.ValidateKey")
}

// Encrypt writes plaintext along a zig-zag across rails and reads the rails
// top to bottom.
func Encrypt(plaintext string, rails int) (string, error) {
	rails, err := validate(rails, "railfence.Encrypt")
	if err != nil {
		return "", err
	}

	text := []rune(plaintext)
	buckets := make([][]rune, rails)
	for i, rail := range Sequence(len(text), rails) {
		buckets[rail] = append(buckets[rail], text[i])
	}

	out := make([]rune, 0, len(text))
	for _, b := range buckets {
		out = append(out, b...)
	}
	return string(out), nil
}

// Decrypt reverses Encrypt: it counts how many positions each rail owns, cuts
// the ciphertext into those runs, and walks the zig-zag again to read them
// back in order.
func Decrypt(ciphertext string, rails int) (string, error) {
	rails, err := validate(rails, "railfence.Decrypt")
	if err != nil {
		return "", err
	}

	text := []rune(ciphertext)
	seq := Sequence(len(text), rails)

	counts := make([]int, rails)
	for _, rail := range seq {
		counts[rail]++
	}

	buckets := make([][]rune, rails)
	offset := 0
	for rail, n := range counts {
		buckets[rail] = text[offset : offset+n]
		offset += n
	}

	next := make([]int, rails)
	out := make([]rune, 0, len(text))
	for _, rail := range seq {
		out = append(out, buckets[rail][next[rail]])
		next[rail]++
	}
	return string(out), nil
}

// Sequence returns the rail index of each of length positions. It starts at
// rail 0, walks down to rails-1 and bounces back up, repeating.
func Sequence(length, rails int) []int {
	seq := make([]int, 0, length)
	if rails < 1 {
		return seq
	}
	row, step := 0, 1
	for i := 0; i < length; i++ {
		switch {
		case row+1 >= rails:
			step = -1
		case row == 0:
			step = 1
		}
		seq = append(seq, row)
		row += step
		if row < 0 {
			row = 0
		}
	}
	return seq
}

func validate(rails int, op string) (int, error) {
	if rails < MinRails {
		return 0, ciphers.NewError(ciphers.KindInvalidRailFenceKey, op)
	}
	return rails, nil
}
