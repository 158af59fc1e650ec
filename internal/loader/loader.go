// Package loader handles ROM dump file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/AdamLaurie/marc4dasm/internal/arch/marc4"
	"github.com/AdamLaurie/marc4dasm/internal/disasm"
)

// Loader handles loading ROM dump files from disk.
type Loader struct{}

// New creates a new ROM dump loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the raw ROM dump with the given file name. The file is opened read-only.
func (l *Loader) Load(filename string) ([]byte, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", filename, err)
	}
	defer func() { _ = file.Close() }()

	data, err := l.LoadFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", filename, err)
	}
	return data, nil
}

// LoadFromReader reads a raw ROM dump from the reader.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	// read one extra byte to detect oversized input
	data, err := io.ReadAll(io.LimitReader(reader, marc4.MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}
	if len(data) > marc4.MaxImageSize {
		return nil, fmt.Errorf("%w: more than %d bytes", disasm.ErrImageTooLarge, marc4.MaxImageSize)
	}
	return data, nil
}
