package disasm

import (
	"fmt"

	"github.com/AdamLaurie/marc4dasm/internal/arch/marc4"
	"github.com/AdamLaurie/marc4dasm/internal/symbols"
)

const (
	labelNaming    = "LABEL_%03X"
	variableNaming = "VAR_%02X"
	orphanNaming   = "ORPHAN_%03X"
)

// resolver registers all addresses referenced by the instruction stream.
// Names are numbered in the order the addresses are first referenced.
type resolver struct {
	tables symbols.Tables

	labels       int
	variables    int
	unrecognized int
}

func newResolver(tables symbols.Tables) *resolver {
	return &resolver{
		tables: tables,
	}
}

func (r *resolver) process(data []byte) error {
	for ins := range marc4.Instructions(data) {
		switch ins.Space() {
		case marc4.ROMSpace:
			added, err := r.tables.ROM.Add(ins.Target, fmt.Sprintf(labelNaming, r.labels))
			if err != nil {
				return fmt.Errorf("instruction at $%04X: %w", ins.Address, err)
			}
			if added {
				r.labels++
			}

		case marc4.RAMSpace:
			added, err := r.tables.RAM.Add(ins.Target, fmt.Sprintf(variableNaming, r.variables))
			if err != nil {
				return fmt.Errorf("instruction at $%04X: %w", ins.Address, err)
			}
			if added {
				r.variables++
			}

		case marc4.NoSpace:
			if ins.Opcode.Class == marc4.Unrecognized {
				r.unrecognized++
			}
		}
	}
	return nil
}
