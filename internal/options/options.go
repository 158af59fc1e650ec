// Package options contains the program options.
package options

import "github.com/AdamLaurie/marc4dasm/internal/symbols"

// Positional contains positional arguments.
type Positional struct {
	File string `arg:"positional" usage:"ROM dump to disassemble"`
	Mode string `arg:"positional" usage:"Q to select the quiet listing format"`
}

// Parameters contains file path options.
type Parameters struct {
	Output  string `flag:"o" usage:"output listing file (default: stdout)"`
	Batch   string `flag:"batch" usage:"batch process files matching pattern (e.g. *.bin)"`
	Symbols string `flag:"symbols" usage:"symbol file naming known ROM and RAM addresses"`
}

// Flags contains behavior options.
type Flags struct {
	Debug bool `flag:"debug" usage:"enable debug logging"`
	Quiet bool `flag:"q" usage:"quiet mode, omit addresses and opcode bytes from the listing"`
}

// Program options of the disassembler.
type Program struct {
	Positional
	Parameters
	Flags

	Input string // file currently processed
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	Quiet bool // omit address and raw byte columns

	ROMSymbols []symbols.Symbol // user names for ROM addresses
	RAMSymbols []symbols.Symbol // user names for RAM addresses
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler(quiet bool) Disassembler {
	return Disassembler{
		Quiet: quiet,
	}
}
