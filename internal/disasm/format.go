package disasm

import "fmt"

// Format selects the layout of the listing lines.
type Format int

// Listing formats.
const (
	// Verbose prefixes lines with the address and the raw instruction bytes.
	Verbose Format = iota
	// Quiet omits the address and raw byte columns.
	Quiet
)

// codeWidth is the padded width of the code, followed by at least one more
// space before the comment separator.
const codeWidth = 40

// LabelLines returns the lines that declare a label at the given address.
func (f Format) LabelLines(address uint16, name string) []string {
	if f == Quiet {
		return []string{
			"",
			fmt.Sprintf("ORIGIN $%03X", address),
			": " + name,
		}
	}

	return []string{
		fmt.Sprintf("%04X", address),
		fmt.Sprintf("%04X        ORIGIN $%03X", address, address),
		fmt.Sprintf("%04X        : %s", address, name),
	}
}

// InstructionLine returns the listing line of an instruction.
func (f Format) InstructionLine(ins Instruction) string {
	var prefix string
	if f == Quiet {
		prefix = "              "
	} else {
		operand := "  "
		if ins.HasOperand {
			operand = fmt.Sprintf("%02X", ins.Operand)
		}
		prefix = fmt.Sprintf("%04X %02X %s           ", ins.Address, ins.Opcode, operand)
	}

	return fmt.Sprintf("%s  %-*s  \\ %s", prefix, codeWidth, ins.Code, ins.Comment)
}
