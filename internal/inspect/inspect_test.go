package inspect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/nesgoopcodes/internal/opcodes"
	"github.com/retroenv/nesgoopcodes/internal/table"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func testInspector(t *testing.T) *Inspector {
	t.Helper()

	feed := "LDA (LoaD Accumulator)\n" +
		"Immediate     LDA #$44      $A9  2   2\n" +
		"Zero Page     LDA $44       $A5  2   3\n"

	builder := opcodes.NewBuilder(log.NewTestLogger(t))
	assert.NoError(t, builder.Read(strings.NewReader(feed)))

	tab, err := table.New(builder.Variants())
	assert.NoError(t, err)

	return New(tab, builder.Variants())
}

func runScript(t *testing.T, script string) string {
	t.Helper()

	in := testInspector(t)
	var output bytes.Buffer
	assert.NoError(t, in.Run(strings.NewReader(script), &output, false))
	return output.String()
}

func TestInspectorInfo(t *testing.T) {
	t.Parallel()

	output := runScript(t, "info $A9\nquit\n")
	assert.Contains(t, output, "0xa9 LDA_IMM")
	assert.Contains(t, output, "size=2 cycles=2 mode=immediate")
}

func TestInspectorInfoUndefinedOpcode(t *testing.T) {
	t.Parallel()

	output := runScript(t, "info 02\nquit\n")
	assert.Contains(t, output, "0x02 NOP")
	assert.Contains(t, output, "(undefined)")
}

func TestInspectorFind(t *testing.T) {
	t.Parallel()

	// unique prefix resolves to the variant, ambiguous prefix lists names
	output := runScript(t, "find lda_i\nfind lda\nfind xyz\nquit\n")
	assert.Contains(t, output, "0xa9 LDA_IMM")
	assert.Contains(t, output, "LDA_ZP")
	assert.Contains(t, output, "no variant matches 'xyz'")
}

func TestInspectorDump(t *testing.T) {
	t.Parallel()

	output := runScript(t, "dump\nquit\n")
	assert.Equal(t, 256, strings.Count(output, "\n"))
	assert.Contains(t, output, "0xff ISB_ABX")
}

func TestInspectorUnknownCommand(t *testing.T) {
	t.Parallel()

	output := runScript(t, "bogus\nquit\n")
	assert.Contains(t, output, "Command not found.")
}

func TestInspectorEndsAtEOF(t *testing.T) {
	t.Parallel()

	in := testInspector(t)
	var output bytes.Buffer
	assert.NoError(t, in.Run(strings.NewReader("info a5\n"), &output, false))
	assert.Contains(t, output.String(), "0xa5 LDA_ZP")
}
