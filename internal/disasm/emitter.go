package disasm

import (
	"fmt"
	"iter"

	"github.com/AdamLaurie/marc4dasm/internal/arch/marc4"
	"github.com/AdamLaurie/marc4dasm/internal/symbols"
)

const (
	unknownSymbol      = "???"
	illegalInstruction = "Illegal instruction!"
	literalComment     = "Push literal/constant $%01X onto TOS"
)

// targetComments describes the addressing mode of instructions referencing ROM.
var targetComments = map[marc4.Class]string{
	marc4.LongCall:    "Unconditional long CALL ($%03X)",
	marc4.LongBranch:  "Conditional long branch ($%03X)",
	marc4.ShortBranch: "Conditional short branch in page ($%03X)",
	marc4.ShortCall:   "Unconditional short CALL ($%03X)",
}

// Instruction is a rendered instruction of the listing.
type Instruction struct {
	Address uint16
	Label   string // ROM label declared at the address, empty if none

	Opcode     byte
	Operand    byte
	HasOperand bool

	Target     uint16
	HasTarget  bool
	TargetName string // resolved name of the target

	Code    string // mnemonic and symbolic operand
	Comment string
}

// Emitter renders the instruction stream using frozen symbol tables.
type Emitter struct {
	data    []byte
	symbols symbols.Frozen
	format  Format
}

// NewEmitter returns a new emitter for the given stream.
func NewEmitter(data []byte, frozen symbols.Frozen, format Format) *Emitter {
	return &Emitter{
		data:    data,
		symbols: frozen,
		format:  format,
	}
}

// Instructions returns the rendered instructions of the stream. Every
// iteration walks the stream from the start.
func (e *Emitter) Instructions() iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for ins := range marc4.Instructions(e.data) {
			if !yield(e.render(ins)) {
				return
			}
		}
	}
}

// Lines returns the listing lines of the stream, label declarations
// followed by the instruction line. Every iteration walks the stream from the start.
func (e *Emitter) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for ins := range e.Instructions() {
			if ins.Label != "" {
				for _, line := range e.format.LabelLines(ins.Address, ins.Label) {
					if !yield(line) {
						return
					}
				}
			}

			if !yield(e.format.InstructionLine(ins)) {
				return
			}
		}
	}
}

func (e *Emitter) render(ins marc4.Instruction) Instruction {
	op := ins.Opcode
	rendered := Instruction{
		Address:    uint16(ins.Address),
		Opcode:     op.Value,
		Operand:    ins.Operand,
		HasOperand: ins.HasOperand(),
	}
	rendered.Label, _ = e.symbols.ROM.Get(rendered.Address)

	switch op.Class {
	case marc4.NoOperand:
		rendered.Code = op.Name
		rendered.Comment = description(op)

	case marc4.Literal:
		rendered.Code = op.Name
		rendered.Comment = fmt.Sprintf(literalComment, op.Value&0x0F)

	case marc4.RAMAddressed:
		rendered.setTarget(ins.Target, e.symbols.RAM)
		rendered.Code = op.Name + " " + rendered.TargetName
		rendered.Comment = description(op)

	case marc4.LongCall, marc4.LongBranch, marc4.ShortBranch, marc4.ShortCall:
		rendered.setTarget(ins.Target, e.symbols.ROM)
		rendered.Code = op.Name + " " + rendered.TargetName
		rendered.Comment = fmt.Sprintf(targetComments[op.Class], ins.Target)

	case marc4.Unrecognized:
		rendered.Code = unknownSymbol
		rendered.Comment = illegalInstruction
	}

	return rendered
}

// setTarget sets the target and its name, a missing name renders as placeholder.
func (ins *Instruction) setTarget(target uint16, view symbols.View) {
	ins.Target = target
	ins.HasTarget = true

	name, ok := view.Get(target)
	if !ok {
		name = unknownSymbol
	}
	ins.TargetName = name
}

func description(op marc4.Opcode) string {
	if op.Description == "" {
		return illegalInstruction
	}
	return op.Description
}
