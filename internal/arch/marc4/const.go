package marc4

import "github.com/retroenv/retrogolib/set"

// MARC4 memory layout constants.
const (
	// ROMSize is the size of the ROM address space holding the vectors.
	ROMSize = 0x200

	// PageSize is the size of a ROM page that short branches can reach.
	PageSize = 64

	// ShortCallStride is the distance between two short call entry points,
	// the zero page offers 64 evenly spaced entries.
	ShortCallStride = ROMSize / 64

	// MaxRAMAddress is the highest RAM address.
	MaxRAMAddress = 0xFF

	// MaxLongAddress is the highest address a long call or branch can reference.
	MaxLongAddress = 0xFFF

	// ChecksumSize is the size of the checksum trailer of a ROM dump.
	ChecksumSize = 2

	// MaxImageSize is the largest supported ROM dump, stream offsets are used
	// as 16 bit ROM addresses.
	MaxImageSize = 0x10000 + ChecksumSize
)

// Opcodes with a special meaning for the analysis.
const (
	OpcodeRTI    = 0x1D // return from interrupt
	OpcodeExit   = 0x25 // return from subroutine
	OpcodeUnused = 0xC1 // filler of unused ROM slots

	shortBranchBase = 0x80
	shortCallBase   = 0xC0
)

// Terminators contains the opcodes that end a linear instruction stream.
// The byte following a terminator is a potential entry point of orphan code.
var Terminators = set.NewFromSlice([]byte{OpcodeUnused, OpcodeExit, OpcodeRTI})

// Vector is a fixed ROM address with a predefined name.
type Vector struct {
	Address uint16
	Name    string
}

// Vectors contains the reset and interrupt entry points of the MARC4.
var Vectors = []Vector{
	{Address: 0x000, Name: "$AUTOSLEEP"},
	{Address: 0x008, Name: "$RESET"},
	{Address: 0x040, Name: "INTERRUPT_0"},
	{Address: 0x080, Name: "INTERRUPT_1"},
	{Address: 0x0C0, Name: "INTERRUPT_2"},
	{Address: 0x100, Name: "INTERRUPT_3"},
	{Address: 0x140, Name: "INTERRUPT_4"},
	{Address: 0x180, Name: "INTERRUPT_5"},
	{Address: 0x1C0, Name: "INTERRUPT_6"},
	{Address: 0x1E0, Name: "INTERRUPT_7"},
}
