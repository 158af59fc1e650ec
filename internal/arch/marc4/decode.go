package marc4

import "iter"

// Instruction is a single decoded instruction of a byte stream.
type Instruction struct {
	Address int    // offset of the opcode in the stream
	Opcode  Opcode // decode table entry of the opcode byte
	Operand byte   // operand byte, only valid if the class has an operand
	Target  uint16 // referenced address, only valid if Space is not NoSpace
}

// Size returns the number of bytes the instruction occupies.
func (ins Instruction) Size() int {
	return ins.Opcode.Class.Size()
}

// Next returns the offset of the following instruction.
func (ins Instruction) Next() int {
	return ins.Address + ins.Size()
}

// HasOperand returns whether the instruction has an operand byte.
func (ins Instruction) HasOperand() bool {
	return ins.Opcode.Class.HasOperand()
}

// Space returns the address space of the instruction target.
func (ins Instruction) Space() Space {
	return ins.Opcode.Class.Space()
}

// Decode decodes the instruction at the given offset of data. It returns false
// if the offset is outside of data or the operand byte is missing.
func Decode(data []byte, address int) (Instruction, bool) {
	if address < 0 || address >= len(data) {
		return Instruction{}, false
	}

	ins := Instruction{
		Address: address,
		Opcode:  opcodes[data[address]],
	}
	value := ins.Opcode.Value
	next := address + 1

	if ins.HasOperand() {
		if next >= len(data) {
			return Instruction{}, false
		}
		ins.Operand = data[next]
	}

	switch ins.Opcode.Class {
	case RAMAddressed:
		ins.Target = uint16(ins.Operand)

	case LongCall, LongBranch:
		ins.Target = uint16(value&0x0F)<<8 | uint16(ins.Operand)

	case ShortBranch:
		// the page is the one of the program counter after fetching the opcode
		pageBase := next - next%PageSize
		ins.Target = uint16(pageBase + int(value-shortBranchBase))

	case ShortCall:
		ins.Target = uint16(int(value-shortCallBase) * ShortCallStride)
	}

	return ins, true
}

// Instructions returns the instruction stream of data, starting at offset 0
// and stopping before the checksum trailer.
func Instructions(data []byte) iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		end := len(data) - ChecksumSize
		for address := 0; address < end; {
			ins, ok := Decode(data, address)
			if !ok || !yield(ins) {
				return
			}
			address = ins.Next()
		}
	}
}
