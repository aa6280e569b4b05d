// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bundle

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZip(t *testing.T) {
	dir := t.TempDir()
	media := filepath.Join(dir, "media")
	require.NoError(t, os.MkdirAll(filepath.Join(media, "sub"), 0o755))
	files := map[string]string{
		"blog-cat.jpg":  "cat bytes",
		"blog-clip.mp4": "clip bytes",
		"__assets.db":   "db bytes",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(media, name), []byte(content), 0o644))
	}

	dst := filepath.Join(dir, ArchiveName)
	n, err := Zip(media, dst)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	zr, err := zip.OpenReader(dst)
	require.NoError(t, err)
	t.Cleanup(func() { zr.Close() })

	got := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		got[f.Name] = string(data)
	}
	assert.Equal(t, files, got)
}

func TestZipMissingDir(t *testing.T) {
	dir := t.TempDir()
	_, err := Zip(filepath.Join(dir, "missing"), filepath.Join(dir, ArchiveName))
	require.Error(t, err)
}
