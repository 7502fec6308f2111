package domain_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sema/internal/core/domain"
)

func statFile(t *testing.T, path string) os.FileInfo {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	return info
}

func TestFingerprintOf_Stable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.py")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0o644))

	first := domain.FingerprintOf(statFile(t, path))
	second := domain.FingerprintOf(statFile(t, path))

	assert.Equal(t, first, second)
}

func TestFingerprintOf_ChangesWithContentSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.py")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0o644))
	before := domain.FingerprintOf(statFile(t, path))

	require.NoError(t, os.WriteFile(path, []byte("x = 1\ny = 2\n"), 0o644))
	after := domain.FingerprintOf(statFile(t, path))

	assert.NotEqual(t, before, after)
}

func TestFingerprintOf_ChangesWithMtime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.py")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0o644))
	before := domain.FingerprintOf(statFile(t, path))

	// Same size, different mtime.
	newTime := statFile(t, path).ModTime().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, newTime, newTime))
	after := domain.FingerprintOf(statFile(t, path))

	assert.NotEqual(t, before, after)
}

func TestFingerprintOf_DiffersPerName(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.py")
	pathB := filepath.Join(dir, "b.py")
	require.NoError(t, os.WriteFile(pathA, []byte("x = 1\n"), 0o644))
	require.NoError(t, os.WriteFile(pathB, []byte("x = 1\n"), 0o644))

	infoA := statFile(t, pathA)
	sync := infoA.ModTime()
	require.NoError(t, os.Chtimes(pathB, sync, sync))
	infoB := statFile(t, pathB)

	fpA := domain.FingerprintOf(infoA)
	fpB := domain.FingerprintOf(infoB)

	assert.NotEqual(t, fpA, fpB)
}
