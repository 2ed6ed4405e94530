package utils

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZipFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(first, []byte("noi dung a"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("noi dung b"), 0644))

	var buf bytes.Buffer
	require.NoError(t, ZipFiles(&buf, []string{first, second}))

	reader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, reader.File, 2)
	assert.Equal(t, "a.txt", reader.File[0].Name)
	assert.Equal(t, "b.txt", reader.File[1].Name)
}

func TestZipFiles_SkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0644))

	var buf bytes.Buffer
	require.NoError(t, ZipFiles(&buf, []string{existing, filepath.Join(dir, "missing.txt")}))

	reader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Len(t, reader.File, 1)
}
