package monoalphabetic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers"
)

const azerty = "AZERTYUIOPQSDFGHJKLMWXCVBN"

func TestEncryptDecrypt(t *testing.T) {
	tests := []struct {
		name       string
		plaintext  string
		key        string
		ciphertext string
		decrypted  string
	}{
		{"secret", "SECRET", azerty, "LTEKTM", "SECRET"},
		{"punctuation dropped", "Hello, World!", azerty, "ITSSGCGKSR", "HELLOWORLD"},
		{"qwerty", "THE QUICK", "QWERTYUIOPASDFGHJKLZXCVBNM", "ZITJXOEA", "THEQUICK"},
		{"identity key", "ABC xyz", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", "ABCXYZ", "ABCXYZ"},
		{"empty", "", azerty, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, err := Encrypt(tt.plaintext, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.ciphertext, ct)

			pt, err := Decrypt(ct, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.decrypted, pt)
		})
	}
}

func TestKeyNormalization(t *testing.T) {
	want := Key{}
	copy(want[:], azerty)

	tests := []struct {
		name string
		key  string
	}{
		{"canonical", azerty},
		{"lowercase", "azertyuiopqsdfghjklmwxcvbn"},
		{"separators", "AZERTY-UIOP QSDF,GHJKLM WXCVBN"},
		{"repeats after first occurrence", "AZAZERTYUIOPQSDFGHJKLMWXCVBNNNN"},
		{"mixed case repeats", "AzaZERtyUIOPQSDFGHJKLMWXCVBN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := ValidateKey(tt.key)
			require.NoError(t, err)
			assert.Equal(t, want, k)
			assert.Equal(t, azerty, k.String())
		})
	}
}

func TestLowercaseKeyDecrypts(t *testing.T) {
	pt, err := Decrypt("ltektm", "azertyuiopqsdfghjklmwxcvbn")
	require.NoError(t, err)
	assert.Equal(t, "SECRET", pt)
}

func TestInvalidKey(t *testing.T) {
	keys := []string{
		"",
		"AZERTYUIOPQSDFGHJKLMWXCVB",      // 25 letters
		"AZERTYUIOPQSDFGHJKLMWXCVBB",     // 26 chars, 25 distinct
		"AZERTYUIOPQSDFGHJKLMWXCVB1",     // digit in place of N
		"ABCDEFGHIJKLMNOPQRSTUVWXYÄ",     // non-ASCII letter
		"abcdefghijklmnopqrstuvwxy!!!!!", // z missing
	}

	for _, key := range keys {
		_, err := ValidateKey(key)
		assert.ErrorIs(t, err, ciphers.ErrInvalidMonoAlphabeticKey, "key %q", key)

		_, err = Encrypt("SECRET", key)
		assert.ErrorIs(t, err, ciphers.ErrInvalidMonoAlphabeticKey, "key %q", key)

		_, err = Decrypt("SECRET", key)
		assert.ErrorIs(t, err, ciphers.ErrInvalidMonoAlphabeticKey, "key %q", key)
	}
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		perm := rng.Perm(26)
		key := make([]byte, 26)
		for j, p := range perm {
			key[j] = byte('A' + p)
		}

		text := make([]byte, rng.Intn(50))
		for j := range text {
			text[j] = byte('A' + rng.Intn(26))
		}

		ct, err := Encrypt(string(text), string(key))
		require.NoError(t, err)
		pt, err := Decrypt(ct, string(key))
		require.NoError(t, err)
		require.Equal(t, string(text), pt)
	}
}
