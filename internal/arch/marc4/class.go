package marc4

// Class is the encoding class of an opcode. It determines the instruction
// size and how a referenced address is computed.
type Class uint8

// Encoding classes of the MARC4 instruction set.
const (
	Unrecognized Class = iota
	NoOperand
	Literal
	RAMAddressed
	LongCall
	LongBranch
	ShortBranch
	ShortCall
)

// Space is the address space an instruction target refers to.
type Space uint8

// Address spaces referenced by instructions.
const (
	NoSpace Space = iota
	ROMSpace
	RAMSpace
)

var classNames = [...]string{
	Unrecognized: "unrecognized",
	NoOperand:    "no operand",
	Literal:      "literal",
	RAMAddressed: "ram addressed",
	LongCall:     "long call",
	LongBranch:   "long branch",
	ShortBranch:  "short branch",
	ShortCall:    "short call",
}

// String returns the name of the class.
func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "invalid"
}

// HasOperand returns whether the opcode is followed by an operand byte.
func (c Class) HasOperand() bool {
	switch c {
	case RAMAddressed, LongCall, LongBranch:
		return true
	default:
		return false
	}
}

// Size returns the number of bytes an instruction of this class occupies.
func (c Class) Size() int {
	if c.HasOperand() {
		return 2
	}
	return 1
}

// Space returns the address space that instructions of this class reference.
func (c Class) Space() Space {
	switch c {
	case RAMAddressed:
		return RAMSpace
	case LongCall, LongBranch, ShortBranch, ShortCall:
		return ROMSpace
	default:
		return NoSpace
	}
}
