package disasm

import (
	"fmt"

	"github.com/AdamLaurie/marc4dasm/internal/arch/marc4"
	"github.com/AdamLaurie/marc4dasm/internal/symbols"
)

// detectOrphans names every unlabeled position that follows a stream
// terminator and returns the number of new names.
//
// The scan walks raw byte offsets, not instruction boundaries. An operand byte
// that follows a terminator value is therefore treated as an entry point too.
func detectOrphans(data []byte, rom *symbols.Table) (int, error) {
	var orphans int

	for address := 1; address < len(data)-marc4.ChecksumSize; address++ {
		if !marc4.Terminators.Contains(data[address-1]) || data[address] == marc4.OpcodeUnused {
			continue
		}

		added, err := rom.Add(uint16(address), fmt.Sprintf(orphanNaming, orphans))
		if err != nil {
			return orphans, fmt.Errorf("offset $%04X: %w", address, err)
		}
		if added {
			orphans++
		}
	}

	return orphans, nil
}
