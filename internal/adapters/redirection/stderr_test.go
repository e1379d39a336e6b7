package redirection

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// openTarget opens a scratch file whose descriptor stands in for stderr.
func openTarget(t *testing.T) (*os.File, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "console")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f, path
}

func writeFD(t *testing.T, fd int, s string) {
	t.Helper()
	_, err := unix.Write(fd, []byte(s))
	require.NoError(t, err)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestFDRedirector_ApplyRestore(t *testing.T) {
	console, consolePath := openTarget(t)
	fd := int(console.Fd())
	r := NewFDRedirector(fd)
	logPath := filepath.Join(t.TempDir(), "err.log")

	require.False(t, r.Active())
	require.NoError(t, r.Apply(logPath))
	assert.True(t, r.Active())
	writeFD(t, fd, "redirected\n")

	require.NoError(t, r.Restore())
	assert.False(t, r.Active())
	writeFD(t, fd, "back\n")

	assert.Equal(t, "redirected\n", readFile(t, logPath))
	assert.Equal(t, "back\n", readFile(t, consolePath))
}

func TestFDRedirector_AppendsAcrossApplications(t *testing.T) {
	console, _ := openTarget(t)
	fd := int(console.Fd())
	r := NewFDRedirector(fd)
	logPath := filepath.Join(t.TempDir(), "err.log")

	require.NoError(t, r.Apply(logPath))
	writeFD(t, fd, "one\n")
	require.NoError(t, r.Restore())

	require.NoError(t, r.Apply(logPath))
	writeFD(t, fd, "two\n")
	require.NoError(t, r.Restore())

	assert.Equal(t, "one\ntwo\n", readFile(t, logPath))
}

func TestFDRedirector_ReapplyKeepsOriginalTarget(t *testing.T) {
	console, consolePath := openTarget(t)
	fd := int(console.Fd())
	r := NewFDRedirector(fd)
	dir := t.TempDir()

	require.NoError(t, r.Apply(filepath.Join(dir, "a.log")))
	require.NoError(t, r.Apply(filepath.Join(dir, "b.log")))
	writeFD(t, fd, "b\n")
	require.NoError(t, r.Restore())
	writeFD(t, fd, "console\n")

	assert.Equal(t, "", readFile(t, filepath.Join(dir, "a.log")))
	assert.Equal(t, "b\n", readFile(t, filepath.Join(dir, "b.log")))
	assert.Equal(t, "console\n", readFile(t, consolePath))
}

func TestFDRedirector_RestoreWithoutApplyIsNoop(t *testing.T) {
	console, _ := openTarget(t)
	r := NewFDRedirector(int(console.Fd()))
	assert.NoError(t, r.Restore())
	assert.False(t, r.Active())
}

func TestFDRedirector_ApplyBadPath(t *testing.T) {
	console, _ := openTarget(t)
	r := NewFDRedirector(int(console.Fd()))
	err := r.Apply(filepath.Join(t.TempDir(), "missing-dir", "err.log"))
	assert.Error(t, err)
	assert.False(t, r.Active())
}
