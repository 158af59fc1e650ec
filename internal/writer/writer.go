// Package writer implements the listing file writing.
package writer

import (
	"fmt"
	"io"

	"github.com/AdamLaurie/marc4dasm/internal/disasm"
	"github.com/AdamLaurie/marc4dasm/internal/symbols"
)

// Writer writes a disassembly listing.
type Writer struct {
	listing *disasm.Listing
	writer  io.Writer
}

// New creates a new writer.
func New(listing *disasm.Listing, writer io.Writer) *Writer {
	return &Writer{
		listing: listing,
		writer:  writer,
	}
}

// Write writes the header, the listing lines and the checksum trailer.
// If the input has no checksum, the listing is written and
// disasm.ErrMissingChecksum is returned.
func (w Writer) Write(name string) error {
	if err := w.WriteHeader(name); err != nil {
		return err
	}

	for line := range w.listing.Lines() {
		if _, err := fmt.Fprintln(w.writer, line); err != nil {
			return fmt.Errorf("writing listing line: %w", err)
		}
	}

	checksum, err := w.listing.Checksum()
	if err != nil {
		return fmt.Errorf("reading checksum: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "\nCRC: %s\n", checksum); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	return nil
}

// WriteHeader writes the input file name and the ROM and RAM cross-reference
// tables as comments to the output.
func (w Writer) WriteHeader(name string) error {
	lines := []string{
		`\`,
		`\`,
		`\       ` + name,
		`\`,
		`\`,
		`\       ROM ADDRESS       LABEL`,
		`\`,
	}
	if err := w.writeLines(lines); err != nil {
		return fmt.Errorf("writing file header: %w", err)
	}

	if err := w.writeSymbols(w.listing.Symbols.ROM, `\       $%03X              %s`); err != nil {
		return fmt.Errorf("writing ROM labels: %w", err)
	}

	lines = []string{
		`\`,
		`\`,
		`\`,
		`\       RAM VARIABLE      LABEL`,
		`\`,
	}
	if err := w.writeLines(lines); err != nil {
		return fmt.Errorf("writing variable header: %w", err)
	}

	if err := w.writeSymbols(w.listing.Symbols.RAM, `\       $%02X               %s`); err != nil {
		return fmt.Errorf("writing RAM variables: %w", err)
	}

	lines = []string{`\`, `\`, `\`, `\`}
	if err := w.writeLines(lines); err != nil {
		return fmt.Errorf("writing header end: %w", err)
	}
	return nil
}

func (w Writer) writeSymbols(view symbols.View, format string) error {
	for _, sym := range view.Sorted() {
		if _, err := fmt.Fprintf(w.writer, format+"\n", sym.Address, sym.Name); err != nil {
			return fmt.Errorf("writing symbol: %w", err)
		}
	}
	return nil
}

func (w Writer) writeLines(lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w.writer, line); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}
