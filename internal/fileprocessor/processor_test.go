package fileprocessor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AdamLaurie/marc4dasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestGenerateOutputFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"rom.bin", "rom.lst"},
		{"dir/rom.bin", "dir/rom.lst"},
		{"rom", "rom.lst"},
		{"rom.dump.bin", "rom.dump.lst"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateOutputFilename(tt.input))
		})
	}
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.bin", "b.bin", "c.txt"} {
		writeFile(t, filepath.Join(dir, name), []byte{0x00, 0x00})
	}

	opts := &options.Program{Input: "rom.bin"}
	files, err := GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{"rom.bin"}, files)

	opts.Batch = filepath.Join(dir, "*.bin")
	files, err = GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.bin"), filepath.Join(dir, "b.bin")}, files)

	opts.Batch = filepath.Join(dir, "*.rom")
	_, err = GetFilesToProcess(opts)
	assert.ErrorIs(t, err, ErrNoMatchingFiles)
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "rom.bin")
	writeFile(t, input, []byte{0x01, 0x25, 0xAA, 0xBB})

	opts := options.Program{Input: input}
	opts.Output = GenerateOutputFilename(input)

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.NewDisassembler(false))
	assert.NoError(t, err)

	data, err := os.ReadFile(opts.Output)
	assert.NoError(t, err)
	listing := string(data)
	assert.True(t, strings.HasPrefix(listing, "\\\n\\\n\\       "+input+"\n"))
	assert.Contains(t, listing, "0000 01")
	assert.True(t, strings.HasSuffix(listing, "\nCRC: AA BB\n"))
}

func TestProcessFile_MissingInput(t *testing.T) {
	dir := t.TempDir()
	opts := options.Program{Input: filepath.Join(dir, "missing.bin")}
	opts.Output = filepath.Join(dir, "missing.lst")

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.Disassembler{})
	assert.Error(t, err)

	_, err = os.Stat(opts.Output)
	assert.True(t, os.IsNotExist(err))
}

func TestProcessFile_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ProcessFile(ctx, log.NewTestLogger(t), options.Program{Input: "rom.bin"}, options.Disassembler{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)

	PrintBanner(logger, options.Program{}, "v1.0.0", "0123456789abcdef", "2026-01-01")

	opts := options.Program{}
	opts.Quiet = true
	PrintBanner(logger, opts, "v1.0.0", "", "")
}

func writeFile(t *testing.T, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(name, data, 0600); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
}
