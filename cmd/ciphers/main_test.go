package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers"
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/registry"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunSingleCipher(t *testing.T) {
	out, _, err := runCLI(t, "", "-cipher", "caesar", "-key", "3", "SECRET", "TEXT.")
	require.NoError(t, err)
	assert.Equal(t, "VHFUHW WHAW.\n", out)

	out, _, err = runCLI(t, "DSPXIK\n", "-cipher", "vernam", "-decrypt", "-key", "LONGER")
	require.NoError(t, err)
	assert.Equal(t, "SECRET\n", out)
}

func TestRunInvalidKey(t *testing.T) {
	_, _, err := runCLI(t, "", "-cipher", "rail_fence", "-key", "1", "SECRET")
	assert.ErrorIs(t, err, ciphers.ErrInvalidRailFenceKey)
}

func TestRunRecipe(t *testing.T) {
	chdir(t, t.TempDir())
	recipe := "name: cols\npipeline:\n  steps:\n    - operation: columnar_transposition_encrypt\n      key: \"2143\"\n"
	require.NoError(t, os.WriteFile("cols.yaml", []byte(recipe), 0o600))

	out, _, err := runCLI(t, "", "-recipe", "cols.yaml", "SECRET")
	require.NoError(t, err)
	assert.Equal(t, "ETSERC\n", out)

	out, _, err = runCLI(t, "", "-recipe", "cols.yaml", "-decrypt", "ETSERC")
	require.NoError(t, err)
	assert.Equal(t, "SECRET\n", out)
}

func TestRunReverseCipher(t *testing.T) {
	out, _, err := runCLI(t, "", "-cipher", "rail_fence", "-reverse", "-key", "3", "SEERTC")
	require.NoError(t, err)
	assert.Equal(t, "SECRET\n", out)

	// -reverse on top of -decrypt encrypts again.
	out, _, err = runCLI(t, "", "-cipher", "caesar", "-decrypt", "-reverse", "-key", "3", "SECRET")
	require.NoError(t, err)
	assert.Equal(t, "VHFUHW\n", out)

	_, _, err = runCLI(t, "", "-cipher", "enigma", "-reverse", "-key", "3", "SECRET")
	assert.ErrorIs(t, err, registry.ErrUnknownOperation)
}

func TestRunReverseRecipe(t *testing.T) {
	chdir(t, t.TempDir())
	recipe := "name: shift-fence\npipeline:\n  steps:\n    - operation: caesar_encrypt\n      key: \"3\"\n    - operation: rail_fence_encrypt\n      key: \"2\"\n"
	require.NoError(t, os.WriteFile("shift-fence.yaml", []byte(recipe), 0o600))

	ct, _, err := runCLI(t, "", "-recipe", "shift-fence.yaml", "SECRET")
	require.NoError(t, err)

	out, _, err := runCLI(t, "", "-recipe", "shift-fence.yaml", "-reverse", strings.TrimSuffix(ct, "\n"))
	require.NoError(t, err)
	assert.Equal(t, "SECRET\n", out)

	out, _, err = runCLI(t, "", "-recipe", "shift-fence.yaml", "-decrypt", "-reverse", "SECRET")
	require.NoError(t, err)
	assert.Equal(t, ct, out)
}

func TestRunListAndVersion(t *testing.T) {
	out, _, err := runCLI(t, "", "-list")
	require.NoError(t, err)
	assert.Contains(t, out, "mono_alphabetic_encrypt")
	assert.Equal(t, 10, strings.Count(out, "\n"))

	out, _, err = runCLI(t, "", "-version")
	require.NoError(t, err)
	assert.Contains(t, out, ciphers.LibraryVersion())
}

func TestRunVerboseRedactsKey(t *testing.T) {
	_, logs, err := runCLI(t, "", "-verbose", "-cipher", "mono_alphabetic", "-key", "QWERTYUIOPASDFGHJKLZXCVBNM", "HELLO")
	require.NoError(t, err)
	assert.Contains(t, logs, "operation=mono_alphabetic_encrypt")
	assert.NotContains(t, logs, "QWERTYUIOPASDFGHJKLZXCVBNM")
}

func TestRunRequiresMode(t *testing.T) {
	_, _, err := runCLI(t, "", "SECRET")
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test. It stands
// in for testing.T.Chdir, which needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
