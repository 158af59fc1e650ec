package disasm

import (
	"errors"
	"fmt"
	"iter"

	"github.com/AdamLaurie/marc4dasm/internal/arch/marc4"
	"github.com/AdamLaurie/marc4dasm/internal/symbols"
)

// ErrMissingChecksum is returned when the stream is too short to contain the checksum trailer.
var ErrMissingChecksum = errors.New("missing checksum trailer")

// Checksum contains the two trailer bytes of a ROM dump. The algorithm is
// unknown, so it is reported but never verified.
type Checksum [marc4.ChecksumSize]byte

// String returns the checksum bytes in hexadecimal.
func (c Checksum) String() string {
	return fmt.Sprintf("%02X %02X", c[0], c[1])
}

// ReadChecksum returns the checksum trailer of the stream.
func ReadChecksum(data []byte) (Checksum, error) {
	if len(data) < marc4.ChecksumSize {
		return Checksum{}, fmt.Errorf("%w: stream has %d bytes", ErrMissingChecksum, len(data))
	}

	var checksum Checksum
	copy(checksum[:], data[len(data)-marc4.ChecksumSize:])
	return checksum, nil
}

// Listing is the result of the analysis passes.
type Listing struct {
	Symbols symbols.Frozen
	Stats   Stats

	emitter *Emitter
	data    []byte
}

// Instructions returns the rendered instructions.
func (l *Listing) Instructions() iter.Seq[Instruction] {
	return l.emitter.Instructions()
}

// Lines returns the listing lines.
func (l *Listing) Lines() iter.Seq[string] {
	return l.emitter.Lines()
}

// Checksum returns the unverified checksum trailer.
func (l *Listing) Checksum() (Checksum, error) {
	return ReadChecksum(l.data)
}
