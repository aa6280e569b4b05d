// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clean

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDirKeepsMarkerFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".gitkeep"), "")
	writeFile(t, filepath.Join(dir, "post.md"), "text")
	writeFile(t, filepath.Join(dir, "bulk_assets.zip"), "zip")
	writeFile(t, filepath.Join(dir, "media", "cat.jpg"), "jpg")
	writeFile(t, filepath.Join(dir, "media", "nested", "deep.txt"), "deep")

	s, err := Dir(dir, ".gitkeep")
	require.NoError(t, err)
	assert.Equal(t, Summary{Files: 2, Dirs: 1, Kept: 1}, s)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".gitkeep", entries[0].Name())
}

func TestDirMissing(t *testing.T) {
	s, err := Dir(filepath.Join(t.TempDir(), "does-not-exist"), ".gitkeep")
	require.NoError(t, err)
	assert.Equal(t, Summary{}, s)
}

func TestDirEmptySuffixRemovesEverything(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".gitkeep"), "")
	writeFile(t, filepath.Join(dir, "a.txt"), "a")

	s, err := Dir(dir, "")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Files)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDirCustomSuffix(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "notes.keep"), "")
	writeFile(t, filepath.Join(dir, ".gitkeep"), "")

	_, err := Dir(dir, ".keep")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "notes.keep"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, ".gitkeep"))
	assert.True(t, os.IsNotExist(err))
}
