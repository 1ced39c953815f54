package columnar

import (
	"sort"

	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers"
)

// MaxColumns is the widest grid a key can describe. Each column is named by a
// single decimal digit, so keys stop at "123456789".
const MaxColumns = 9

// Key is a validated transposition key. Key[i] is the zero-based grid column
// that fills the i-th run of the ciphertext.
type Key []int

// Columns returns the grid width.
func (k Key) Columns() int {
	return len(k)
}

// ValidateKey parses key as a permutation of the digits 1..n, where n is the
// length of key. The empty key is rejected even though it is vacuously such a
// permutation: it describes a grid with no columns, which cannot hold any
// text. Keys longer than MaxColumns are rejected as well.
func ValidateKey(key string) (Key, error) {
	return parseKey(key, "columnar.ValidateKey")
}

// Encrypt lays plaintext out row by row in a grid as wide as key and reads it
// back column by column in key order. The last row may be short; its missing
// cells are skipped.
func Encrypt(plaintext, key string) (string, error) {
	k, err := parseKey(key, "columnar.Encrypt")
	if err != nil {
		return "", err
	}

	text := []rune(plaintext)
	cols := k.Columns()
	rows := (len(text) + cols - 1) / cols

	out := make([]rune, 0, len(text))
	for _, col := range k {
		for row := 0; row < rows; row++ {
			if idx := row*cols + col; idx < len(text) {
				out = append(out, text[idx])
			}
		}
	}
	return string(out), nil
}

// Decrypt reverses Encrypt. The ciphertext is cut into per-column runs in key
// order, the first len%n columns owning one extra character, and the grid is
// read back row by row.
func Decrypt(ciphertext, key string) (string, error) {
	k, err := parseKey(key, "columnar.Decrypt")
	if err != nil {
		return "", err
	}

	text := []rune(ciphertext)
	cols := k.Columns()
	fullRows := len(text) / cols
	remainder := len(text) % cols
	totalRows := fullRows
	if remainder > 0 {
		totalRows++
	}

	columns := make([][]rune, cols)
	count := 0
	for _, col := range k {
		size := fullRows
		if col < remainder {
			size++
		}
		columns[col] = text[count : count+size]
		count += size
	}

	out := make([]rune, 0, len(text))
	for row := 0; row < totalRows; row++ {
		for _, column := range columns {
			if row < len(column) {
				out = append(out, column[row])
			}
		}
	}
	return string(out), nil
}

func parseKey(key, op string) (Key, error) {
	invalid := ciphers.NewError(ciphers.KindInvalidColumnarTranspositionKey, op)

	if len(key) == 0 || len(key) > MaxColumns {
		return nil, invalid
	}

	type column struct {
		digit int
		index int
	}
	n := len(key)
	seen := make([]bool, n+1)
	pairs := make([]column, 0, n)
	for i := 0; i < n; i++ {
		c := key[i]
		if c < '1' || c > '9' {
			return nil, invalid
		}
		d := int(c - '0')
		if d > n || seen[d] {
			return nil, invalid
		}
		seen[d] = true
		pairs = append(pairs, column{digit: d, index: i})
	}

	// Rank columns by digit, then record for each key position the rank of
	// its column. For a permutation of 1..n that rank is digit-1.
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].digit < pairs[j].digit })
	k := make(Key, n)
	for rank, p := range pairs {
		k[p.index] = rank
	}
	return k, nil
}
