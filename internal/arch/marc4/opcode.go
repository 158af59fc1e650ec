package marc4

import "fmt"

// Opcode describes a single opcode value of the instruction set.
type Opcode struct {
	Value       byte
	Class       Class
	Name        string // mnemonic, empty for unrecognized opcodes
	Description string // empty if the behavior is undocumented
}

// zeroAddress contains the mnemonics of the single byte stack instructions.
// 0x7D-0x7F are reserved and have no documented behavior.
var zeroAddress = map[byte]string{
	0x00: "ADD",
	0x01: "ADDC",
	0x02: "SUB",
	0x03: "SUBB",
	0x04: "XOR",
	0x05: "AND",
	0x06: "CMP_EQ",
	0x07: "CMP_NE",
	0x08: "CMP_LT",
	0x09: "CMP_LE",
	0x0A: "CMP_GT",
	0x0B: "CMP_GE",
	0x0C: "OR",
	0x0D: "CCR@",
	0x0E: "CCR!",
	0x0F: "SLEEP",
	0x10: "SHL",
	0x11: "ROL",
	0x12: "SHR",
	0x13: "ROR",
	0x14: "INC",
	0x15: "DEC",
	0x16: "DAA",
	0x17: "NOT",
	0x18: "TOG_BF",
	0x19: "SET_BCF",
	0x1A: "DI",
	0x1B: "IN",
	0x1C: "DECR",
	0x1D: "RTI",
	0x1E: "SWI",
	0x1F: "OUT",
	0x20: "TABLE",
	0x21: "TABLE",
	0x22: ">R",
	0x23: "I",
	0x24: "EXIT",
	0x25: "EXIT",
	0x26: "SWAP",
	0x27: "OVER",
	0x28: "2>R",
	0x29: "3>R",
	0x2A: "2R@",
	0x2B: "3R@",
	0x2C: "ROT",
	0x2D: "DUP",
	0x2E: "DROP",
	0x2F: "DROPR",
	0x30: "[X]@",
	0x31: "[+X]@",
	0x32: "[X-]@",
	0x34: "[Y]@",
	0x35: "[+Y]@",
	0x36: "[Y-]@",
	0x38: "[X]!",
	0x39: "[+X]!",
	0x3A: "[X-]!",
	0x3C: "[Y]!",
	0x3D: "[+Y]!",
	0x3E: "[Y-]!",
	0x70: "SP@",
	0x71: "RP@",
	0x72: "X@",
	0x73: "Y@",
	0x74: "SP!",
	0x75: "RP!",
	0x76: "X!",
	0x77: "Y!",
	0x7C: "NOP",
	0x7D: "---",
	0x7E: "---",
	0x7F: "---",
}

// ramAddressed contains the instructions that are followed by a RAM address.
var ramAddressed = map[byte]string{
	0x33: "[>X]@",
	0x37: "[>Y]@",
	0x3B: "[>X]!",
	0x3F: "[>Y]!",
	0x78: ">SP",
	0x79: ">RP",
	0x7A: ">X",
	0x7B: ">Y",
}

// descriptions contains the documented behavior of opcodes.
var descriptions = map[byte]string{
	0x00: "Add the top 2 stack digits",
	0x01: "Add with carry the top 2 stack digits",
	0x02: "2's complement subtraction of the top 2 digits",
	0x03: "1's complement subtraction of the top 2 digits",
	0x04: "Exclusive-OR top 2 stack digits",
	0x05: "Bitwise-AND top 2 stack digits",
	0x06: "Equality test for top 2 stack digits",
	0x07: "Inequality test for top 2 stack digits",
	0x08: "Less-than test for top 2 stack digits",
	0x09: "Less-or-equal for top 2 stack digits",
	0x0A: "Greater-than for top 2 stack digits",
	0x0B: "Greater-or-equal for top 2 stack digits",
	0x0C: "Bitwise-OR top 2 stack digits",
	0x0D: "Copy condition code onto TOS",
	0x0E: "Restore condition codes",
	0x0F: "CPU in 'sleep mode', interrupts enabled",
	0x10: "Shift TOS left into carry",
	0x11: "Rotate TOS left through carry",
	0x12: "Shift TOS right into Carry",
	0x13: "Rotate TOS right through carry",
	0x14: "Increment TOS",
	0x15: "Decrement TOS",
	0x16: "Decimal adjust for addition (in BCD arithmetic)",
	0x17: "1's complement of TOS",
	0x18: "Toggle Branch flag",
	0x19: "Set Branch and Carry flag",
	0x1A: "Disable all interrupts",
	0x1B: "Read 4-bit I/O port to TOS",
	0x1C: "Decrement index on return stack",
	0x1D: "Return from interrupt routine; enable all interrupts",
	0x1E: "Software interrupt",
	0x1F: "Write TOS to 4-bit I/O port",
	0x20: "Fetch an 8-bit ROM constant and performs an EXIT to Ret_PC",
	0x21: "Fetch an 8-bit ROM constant and performs an EXIT to Ret_PC",
	0x22: "Move (loop) index onto Return Stack",
	0x23: "Copy (loop) index from the Return Stack onto TOS",
	0x24: "Return from subroutine (';')",
	0x25: "Return from subroutine (';')",
	0x26: "Exchange the top 2 digits",
	0x27: "Push a copy of TOS-1 onto TOS",
	0x28: "Move top 2 digits onto Return Stack",
	0x29: "Move top 3 digits onto Return Stack",
	0x2A: "Copy 2 digits from Return to Expression Stack",
	0x2B: "Copy 3 digits from Return to Expression Stack",
	0x2C: "Move third digit onto TOS",
	0x2D: "Duplicate the TOS digit",
	0x2E: "Remove TOS digit from the Expression Stack",
	0x2F: "Remove one entry from the Return Stack",
	0x30: "Indirect fetch from RAM addressed by the X register",
	0x31: "Indirect fetch from RAM addressed by preincremented X register",
	0x32: "Indirect fetch from RAM addressed by the postdecremented X register",
	0x33: "Direct fetch from RAM addressed by the X register",
	0x34: "Indirect fetch from RAM addressed by the Y register",
	0x35: "Indirect fetch from RAM addressed by preincremented Y register",
	0x36: "Indirect fetch from RAM addressed by postdecremented Y register",
	0x37: "Direct fetch from RAM addressed by the Y register",
	0x38: "Indirect store into RAM addressed by the X register",
	0x39: "Indirect store into RAM addressed by pre-incremented X register",
	0x3A: "Indirect store into RAM addressed by the postdecremented X reg.",
	0x3B: "Direct store into RAM addressed by the X register",
	0x3C: "Indirect store into RAM addressed by the Y register",
	0x3D: "Indirect store into RAM addressed by pre-incremented Y register",
	0x3E: "Indirect store into RAM addressed by the post-decremented Y reg.",
	0x3F: "Direct store into RAM addressed by the Y register",
	0x70: "Fetch the current Expression Stack Pointer",
	0x71: "Fetch current Return Stack Pointer",
	0x72: "Fetch current X register contents",
	0x73: "Fetch current Y register contents",
	0x74: "Move address into the Expression Stack Pointer",
	0x75: "Move address into the Return Stack Pointer",
	0x76: "Move address into the X register",
	0x77: "Move address into the Y register",
	0x78: "Set Expression Stack Pointer",
	0x79: "Set return Stack Pointer direct",
	0x7A: "Set RAM address register X direct",
	0x7B: "Set RAM address register Y direct",
	0x7C: "No operation",
}

// opcodes is the decode table for all 256 opcode values.
var opcodes = buildOpcodes()

// Opcodes returns the decode table entry of the given opcode value.
func Opcodes(value byte) Opcode {
	return opcodes[value]
}

func buildOpcodes() [256]Opcode {
	var table [256]Opcode

	for i := range table {
		value := byte(i)
		op := Opcode{
			Value:       value,
			Description: descriptions[value],
		}

		switch {
		case zeroAddress[value] != "":
			op.Class = NoOperand
			op.Name = zeroAddress[value]

		case ramAddressed[value] != "":
			op.Class = RAMAddressed
			op.Name = ramAddressed[value]

		// 0x46 is not part of the documented call encodings
		case value >= 0x40 && value <= 0x4F && value != 0x46:
			op.Class = LongCall
			op.Name = "CALL"

		case value >= 0x50 && value <= 0x5F:
			op.Class = LongBranch
			op.Name = "BRA"

		case value >= 0x60 && value <= 0x6F:
			op.Class = Literal
			op.Name = fmt.Sprintf("LIT_%X", value&0x0F)

		case value >= shortBranchBase && value < shortCallBase:
			op.Class = ShortBranch
			op.Name = "SBRA"

		case value >= shortCallBase:
			op.Class = ShortCall
			op.Name = "SCALL"

		default:
			op.Class = Unrecognized
		}

		table[i] = op
	}

	return table
}
