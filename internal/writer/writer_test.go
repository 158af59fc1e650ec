package writer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/AdamLaurie/marc4dasm/internal/disasm"
	"github.com/AdamLaurie/marc4dasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func process(t *testing.T, data []byte, quiet bool) *disasm.Listing {
	t.Helper()

	dis, err := disasm.New(log.NewTestLogger(t), data, options.NewDisassembler(quiet))
	assert.NoError(t, err)
	listing, err := dis.Process(context.Background())
	assert.NoError(t, err)
	return listing
}

func TestWrite(t *testing.T) {
	// [>X]@ $44, CALL $123, EXIT, checksum
	listing := process(t, []byte{0x33, 0x44, 0x41, 0x23, 0x25, 0x12, 0x34}, true)

	var buf bytes.Buffer
	w := New(listing, &buf)
	assert.NoError(t, w.Write("rom.bin"))

	expected := []string{
		`\`,
		`\`,
		`\       rom.bin`,
		`\`,
		`\`,
		`\       ROM ADDRESS       LABEL`,
		`\`,
		`\       $000              $AUTOSLEEP`,
		`\       $008              $RESET`,
		`\       $040              INTERRUPT_0`,
		`\       $080              INTERRUPT_1`,
		`\       $0C0              INTERRUPT_2`,
		`\       $100              INTERRUPT_3`,
		`\       $123              LABEL_000`,
		`\       $140              INTERRUPT_4`,
		`\       $180              INTERRUPT_5`,
		`\       $1C0              INTERRUPT_6`,
		`\       $1E0              INTERRUPT_7`,
		`\`,
		`\`,
		`\`,
		`\       RAM VARIABLE      LABEL`,
		`\`,
		`\       $44               VAR_00`,
		`\`,
		`\`,
		`\`,
		`\`,
		``,
		`ORIGIN $000`,
		`: $AUTOSLEEP`,
	}

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, expected, lines[:len(expected)])

	assert.Contains(t, lines[len(expected)], "[>X]@ VAR_00")
	assert.Contains(t, lines[len(expected)+1], "CALL LABEL_000")
	assert.Contains(t, lines[len(expected)+2], "EXIT")
	assert.Equal(t, []string{"", "CRC: 12 34", ""}, lines[len(expected)+3:])
}

func TestWrite_MissingChecksum(t *testing.T) {
	listing := process(t, []byte{0x01}, false)

	var buf bytes.Buffer
	err := New(listing, &buf).Write("short.bin")
	assert.ErrorIs(t, err, disasm.ErrMissingChecksum)

	output := buf.String()
	assert.Contains(t, output, `\       short.bin`)
	assert.False(t, strings.Contains(output, "CRC:"))
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestWrite_WriterError(t *testing.T) {
	listing := process(t, []byte{0x01, 0x25, 0xAA, 0xBB}, false)

	err := New(listing, failingWriter{}).Write("rom.bin")
	assert.ErrorIs(t, err, errWrite)
}
