package secrets_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lone-faerie/uomgrade/config/secrets"
)

func withDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := secrets.Dir
	secrets.Dir = dir
	t.Cleanup(func() { secrets.Dir = old })
	return dir
}

func TestRead(t *testing.T) {
	dir := withDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "foo"), []byte("  Hello, world!\n"), 0600))

	s, err := secrets.Read("foo")
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", s)

	_, err = secrets.Read("missing")
	assert.Error(t, err)
	assert.Equal(t, "fallback", secrets.MustRead("missing", "fallback"))
}

func TestReadLarge(t *testing.T) {
	dir := withDir(t)
	value := strings.Repeat("x", 4000)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "big"), []byte(value), 0600))
	assert.Equal(t, value, secrets.MustRead("big", ""))
}

func TestReadStaysInDir(t *testing.T) {
	dir := withDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "passwd"), []byte("inside"), 0600))
	assert.Equal(t, "inside", secrets.MustRead("../../passwd", ""))
}

func TestCutPrefix(t *testing.T) {
	s, ok := secrets.CutPrefix("!secret foo")
	assert.True(t, ok)
	assert.Equal(t, "foo", s)

	_, ok = secrets.CutPrefix("$FOO")
	assert.False(t, ok)
}
