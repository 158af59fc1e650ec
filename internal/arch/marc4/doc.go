// Package marc4 provides the Atmel MARC4 instruction set description used by the disassembler.
//
// # MARC4 Architecture Overview
//
// The MARC4 is a 4-bit microcontroller core with a Forth like, stack oriented
// instruction set. Most instructions operate implicitly on the expression stack
// and are encoded in a single byte.
//
// # Memory Layout
//
//   - ROM: 9-bit instruction address space (0x000-0x1FF) holding code and the
//     fixed reset and interrupt vectors
//   - RAM: 8-bit data address space (0x00-0xFF) of 4-bit nibbles
//
// A ROM dump file contains the instruction stream starting at ROM address 0,
// followed by a two byte checksum trailer.
//
// # Instruction Encoding
//
// Every opcode belongs to exactly one Class:
//   - NoOperand: zero address instructions, 1 byte
//   - Literal: LIT_0..LIT_F, the low nibble is the pushed constant, 1 byte
//   - RAMAddressed: direct RAM access, opcode followed by an 8-bit RAM address
//   - LongCall, LongBranch: opcode low nibble and the next byte form a 12-bit
//     ROM address
//   - ShortBranch: 0x80-0xBF, conditional branch inside the current 64 byte page
//   - ShortCall: 0xC0-0xFF, call into the zero page in steps of 8 bytes
//   - Unrecognized: anything else, decoded as a 1 byte illegal instruction
//
// Decode is the single place that knows how many bytes an instruction uses and
// which address it references, all analysis passes step through the stream with it.
package marc4
