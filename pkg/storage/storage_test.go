package storage_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"job-board-backend/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pdfSample = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n%%EOF")

func TestValidateResume(t *testing.T) {
	const maxSize = 5 * 1024 * 1024

	t.Run("Should accept a well-formed PDF", func(t *testing.T) {
		res := storage.ValidateResume("cv.pdf", pdfSample, "application/pdf", maxSize)
		assert.True(t, res.Valid)
		assert.Equal(t, ".pdf", res.Extension)
	})

	t.Run("Should reject non-PDF extension", func(t *testing.T) {
		res := storage.ValidateResume("cv.docx", pdfSample, "application/pdf", maxSize)
		assert.False(t, res.Valid)
	})

	t.Run("Should reject missing extension", func(t *testing.T) {
		res := storage.ValidateResume("cv", pdfSample, "application/pdf", maxSize)
		assert.False(t, res.Valid)
	})

	t.Run("Should reject wrong declared MIME type", func(t *testing.T) {
		res := storage.ValidateResume("cv.pdf", pdfSample, "application/octet-stream", maxSize)
		assert.False(t, res.Valid)
	})

	t.Run("Should reject spoofed content", func(t *testing.T) {
		res := storage.ValidateResume("cv.pdf", []byte("MZ\x90\x00 not a pdf"), "application/pdf", maxSize)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Error, "spoofing")
	})

	t.Run("Should reject oversized file", func(t *testing.T) {
		big := append(bytes.Clone(pdfSample), make([]byte, maxSize)...)
		res := storage.ValidateResume("cv.pdf", big, "application/pdf", maxSize)
		assert.False(t, res.Valid)
	})

	t.Run("Should accept file exactly at the limit", func(t *testing.T) {
		exact := append(bytes.Clone(pdfSample), make([]byte, maxSize-len(pdfSample))...)
		res := storage.ValidateResume("cv.pdf", exact, "application/pdf", maxSize)
		assert.True(t, res.Valid)
	})
}

func TestLocalStoreSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store := storage.NewLocalStore(dir)

	path, err := store.Save(context.Background(), "resume", "My CV.pdf", pdfSample)
	require.NoError(t, err)

	t.Run("Creates the upload directory on first use", func(t *testing.T) {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("Stored name carries field prefix and extension", func(t *testing.T) {
		base := filepath.Base(path)
		assert.True(t, strings.HasPrefix(base, "resume-"))
		assert.True(t, strings.HasSuffix(base, ".pdf"))
	})

	t.Run("Content round-trips", func(t *testing.T) {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, pdfSample, data)
	})

	t.Run("Successive saves never collide", func(t *testing.T) {
		other, err := store.Save(context.Background(), "resume", "My CV.pdf", pdfSample)
		require.NoError(t, err)
		assert.NotEqual(t, path, other)
	})
}
