// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/AdamLaurie/marc4dasm/internal/disasm"
	"github.com/AdamLaurie/marc4dasm/internal/loader"
	"github.com/AdamLaurie/marc4dasm/internal/options"
	"github.com/AdamLaurie/marc4dasm/internal/symbolfile"
	"github.com/AdamLaurie/marc4dasm/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute runs the complete disassembly pipeline for the input file of the options.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler,
	output io.Writer) (*disasm.Listing, error) {

	if opts.Symbols != "" {
		file, err := symbolfile.Load(opts.Symbols)
		if err != nil {
			return nil, fmt.Errorf("loading symbols: %w", err)
		}
		disasmOpts.ROMSymbols = file.ROM
		disasmOpts.RAMSymbols = file.RAM

		p.logger.Debug("Loaded symbol file",
			log.String("file", opts.Symbols),
			log.Int("rom", len(file.ROM)),
			log.Int("ram", len(file.RAM)))
	}

	data, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading ROM dump: %w", err)
	}

	return p.ExecuteWithData(ctx, data, opts, disasmOpts, output)
}

// ExecuteWithData runs the disassembly pipeline with an already loaded ROM dump.
// This is useful for testing and programmatic usage where the data is already in memory.
func (p *Pipeline) ExecuteWithData(ctx context.Context, data []byte, opts options.Program,
	disasmOpts options.Disassembler, output io.Writer) (*disasm.Listing, error) {

	dis, err := disasm.New(p.logger, data, disasmOpts)
	if err != nil {
		return nil, fmt.Errorf("creating disassembler: %w", err)
	}

	p.printInfo(opts, data)

	listing, err := dis.Process(ctx)
	if err != nil {
		return nil, fmt.Errorf("disassembling: %w", err)
	}

	p.logger.Debug("Analysis finished",
		log.Int("labels", listing.Stats.Labels),
		log.Int("variables", listing.Stats.Variables),
		log.Int("orphans", listing.Stats.Orphans),
		log.Int("unrecognized", listing.Stats.Unrecognized))

	if err := writer.New(listing, output).Write(opts.Input); err != nil {
		return listing, fmt.Errorf("writing listing: %w", err)
	}
	return listing, nil
}

// printInfo prints information about the ROM dump being processed.
func (p *Pipeline) printInfo(opts options.Program, data []byte) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing MARC4 ROM",
		log.String("file", opts.Input),
		log.Int("size", len(data)),
	)
}
