package loader

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/AdamLaurie/marc4dasm/internal/arch/marc4"
	"github.com/AdamLaurie/marc4dasm/internal/disasm"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load binary file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x01, 0x25, 0xAA, 0xBB})

		data, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x01, 0x25, 0xAA, 0xBB}, data)
	})

	t.Run("load empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		data, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("error on missing file", func(t *testing.T) {
		_, err := New().Load(filepath.Join(t.TempDir(), "missing.bin"))
		assert.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("largest supported image", func(t *testing.T) {
		data, err := New().LoadFromReader(bytes.NewReader(make([]byte, marc4.MaxImageSize)))
		assert.NoError(t, err)
		assert.Len(t, data, marc4.MaxImageSize)
	})

	t.Run("error on oversized image", func(t *testing.T) {
		_, err := New().LoadFromReader(bytes.NewReader(make([]byte, marc4.MaxImageSize+1)))
		assert.ErrorIs(t, err, disasm.ErrImageTooLarge)
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.bin")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
