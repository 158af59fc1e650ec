// Package disasm implements the MARC4 disassembler passes.
//
// Disassembly runs in three passes over the same immutable byte stream:
//  1. label discovery registers every referenced ROM and RAM address
//  2. orphan detection names code that follows a stream terminator
//  3. emission renders every instruction using the frozen symbol tables
package disasm

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdamLaurie/marc4dasm/internal/arch/marc4"
	"github.com/AdamLaurie/marc4dasm/internal/options"
	"github.com/AdamLaurie/marc4dasm/internal/symbols"
	"github.com/retroenv/retrogolib/log"
)

// ErrImageTooLarge is returned for streams whose offsets do not fit into ROM addresses.
var ErrImageTooLarge = errors.New("ROM image too large")

// Disasm implements a disassembler.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler
	data    []byte
}

// Stats contains the counts of the analysis passes.
type Stats struct {
	Labels       int // generated LABEL_ names
	Variables    int // generated VAR_ names
	Orphans      int // generated ORPHAN_ names
	Unrecognized int // instructions with an unrecognized opcode
}

// New creates a new disassembler for the given ROM dump. The data must not be
// modified while the disassembler or a listing produced by it is in use.
func New(logger *log.Logger, data []byte, options options.Disassembler) (*Disasm, error) {
	if len(data) > marc4.MaxImageSize {
		return nil, fmt.Errorf("%w: %d bytes exceed %d", ErrImageTooLarge, len(data), marc4.MaxImageSize)
	}

	return &Disasm{
		logger:  logger,
		options: options,
		data:    data,
	}, nil
}

// Process runs the analysis passes and returns the listing that renders
// the instruction stream.
func (dis *Disasm) Process(ctx context.Context) (*Listing, error) {
	tables, err := dis.seedTables()
	if err != nil {
		return nil, err
	}

	res := newResolver(tables)
	if err := res.process(dis.data); err != nil {
		return nil, fmt.Errorf("resolving labels: %w", err)
	}
	dis.logger.Debug("Resolved labels",
		log.Int("labels", res.labels),
		log.Int("variables", res.variables))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("after resolving labels: %w", err)
	}

	orphans, err := detectOrphans(dis.data, tables.ROM)
	if err != nil {
		return nil, fmt.Errorf("detecting orphan code: %w", err)
	}
	dis.logger.Debug("Detected orphan code", log.Int("orphans", orphans))

	if res.unrecognized > 0 {
		dis.logger.Warn("Stream contains unrecognized opcodes",
			log.Int("count", res.unrecognized))
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("after detecting orphan code: %w", err)
	}

	format := Verbose
	if dis.options.Quiet {
		format = Quiet
	}
	frozen := tables.Frozen()

	return &Listing{
		Symbols: frozen,
		Stats: Stats{
			Labels:       res.labels,
			Variables:    res.variables,
			Orphans:      orphans,
			Unrecognized: res.unrecognized,
		},
		emitter: NewEmitter(dis.data, frozen, format),
		data:    dis.data,
	}, nil
}

// seedTables creates the symbol tables containing the fixed vectors and the
// user provided symbols.
func (dis *Disasm) seedTables() (symbols.Tables, error) {
	tables := symbols.NewTables()

	for _, vector := range marc4.Vectors {
		if _, err := tables.ROM.Add(vector.Address, vector.Name); err != nil {
			return symbols.Tables{}, fmt.Errorf("adding vector: %w", err)
		}
	}

	for _, sym := range dis.options.ROMSymbols {
		added, err := tables.ROM.Add(sym.Address, sym.Name)
		if err != nil {
			return symbols.Tables{}, fmt.Errorf("adding ROM symbol: %w", err)
		}
		if !added {
			dis.logger.Warn("ROM symbol address is already named",
				log.String("name", sym.Name),
				log.Hex("address", sym.Address))
		}
	}

	for _, sym := range dis.options.RAMSymbols {
		added, err := tables.RAM.Add(sym.Address, sym.Name)
		if err != nil {
			return symbols.Tables{}, fmt.Errorf("adding RAM symbol: %w", err)
		}
		if !added {
			dis.logger.Warn("RAM symbol address is already named",
				log.String("name", sym.Name),
				log.Hex("address", sym.Address))
		}
	}

	return tables, nil
}
