// Package symbolfile loads user provided names for known ROM and RAM addresses.
//
// The file uses an INI like format:
//
//	# ROM labels
//	[rom]
//	MAIN_LOOP = 0x020
//
//	[ram]
//	COUNTER = 0x10
package symbolfile

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AdamLaurie/marc4dasm/internal/arch/marc4"
	"github.com/AdamLaurie/marc4dasm/internal/symbols"
	"github.com/retroenv/retrogolib/config"
)

// Section names of a symbol file.
const (
	ROMSection = "rom"
	RAMSection = "ram"
)

var (
	// ErrReservedName is returned for names that collide with generated names.
	ErrReservedName = errors.New("reserved symbol name")
	// ErrInvalidAddress is returned for addresses that can not be parsed or are out of range.
	ErrInvalidAddress = errors.New("invalid symbol address")
	// ErrUnknownSection is returned for entries outside the rom and ram sections.
	ErrUnknownSection = errors.New("unknown symbol section")
)

// reservedPrefixes are used by the generated label, variable and orphan names.
var reservedPrefixes = []string{"LABEL_", "VAR_", "ORPHAN_"}

// File contains the symbols of a symbol file in file order.
type File struct {
	ROM []symbols.Symbol
	RAM []symbols.Symbol
}

var parseOptions = config.Options{
	CaseSensitive:   true,
	RawValues:       true,
	CommentPrefixes: "#;",
}

// Load loads the symbol file with the given name.
func Load(filename string) (*File, error) {
	cfg, err := config.Open(filename, parseOptions)
	if err != nil {
		return nil, fmt.Errorf("opening symbol file '%s': %w", filename, err)
	}
	return fromConfig(cfg)
}

// Parse parses a symbol file from a reader.
func Parse(reader io.Reader) (*File, error) {
	cfg, err := config.Parse(reader, parseOptions)
	if err != nil {
		return nil, fmt.Errorf("parsing symbol file: %w", err)
	}
	return fromConfig(cfg)
}

func fromConfig(cfg *config.Config) (*File, error) {
	file := &File{}

	for entry := range cfg.Entries() {
		if err := validateName(entry.Key); err != nil {
			return nil, fmt.Errorf("line %d: %w", entry.Line, err)
		}

		switch strings.ToLower(entry.Section) {
		case ROMSection:
			address, err := parseAddress(entry.Value.Raw, marc4.MaxLongAddress)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", entry.Line, err)
			}
			file.ROM = append(file.ROM, symbols.Symbol{Address: address, Name: entry.Key})

		case RAMSection:
			address, err := parseAddress(entry.Value.Raw, marc4.MaxRAMAddress)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", entry.Line, err)
			}
			file.RAM = append(file.RAM, symbols.Symbol{Address: address, Name: entry.Key})

		default:
			return nil, fmt.Errorf("line %d: %w '%s'", entry.Line, ErrUnknownSection, entry.Section)
		}
	}

	return file, nil
}

func validateName(name string) error {
	for _, prefix := range reservedPrefixes {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			return fmt.Errorf("%w '%s': prefix %s is used for generated names", ErrReservedName, name, prefix)
		}
	}
	return nil
}

func parseAddress(s string, maxAddress uint64) (uint16, error) {
	var address uint64
	var err error
	if hex, ok := strings.CutPrefix(s, "$"); ok {
		address, err = strconv.ParseUint(hex, 16, 16)
	} else {
		address, err = strconv.ParseUint(s, 0, 16)
	}
	if err != nil {
		return 0, fmt.Errorf("%w '%s': %w", ErrInvalidAddress, s, err)
	}
	if address > maxAddress {
		return 0, fmt.Errorf("%w '%s': exceeds $%03X", ErrInvalidAddress, s, maxAddress)
	}
	return uint16(address), nil
}
