package codegen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/nesgoopcodes/internal/opcodes"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func testVariants(t *testing.T) map[string]opcodes.Variant {
	t.Helper()

	feed := "LDA (LoaD Accumulator)\n" +
		"Immediate     LDA #$44      $A9  2   2\n" +
		"Absolute,X    LDA $4400,X   $BD  3   4+\n"

	builder := opcodes.NewBuilder(log.NewTestLogger(t))
	assert.NoError(t, builder.Read(strings.NewReader(feed)))
	return builder.Variants()
}

func TestWriteEmitsConstantsAndEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.NoError(t, Write(&buf, "opcodes", testVariants(t)))

	output := buf.String()
	assert.Contains(t, output, "// Code generated by nesgoopcodes. DO NOT EDIT.")
	assert.Contains(t, output, "package opcodes")
	assert.Contains(t, output, "LDA_IMM byte = 0xa9")
	assert.Contains(t, output, `LDA_IMM: {Name: "LDA_IMM", Size: 2, Cycles: 2, Mode: Immediate, Defined: true}`)
	assert.Contains(t, output, "PageCrossPenalty: true")
	assert.Contains(t, output, "LAX_INX byte = 0xa3")
	assert.Contains(t, output, "func Size(opcode byte) int")
}

func TestWriteDeterminism(t *testing.T) {
	t.Parallel()

	variants := testVariants(t)

	var first bytes.Buffer
	assert.NoError(t, Write(&first, "opcodes", variants))

	var second bytes.Buffer
	assert.NoError(t, Write(&second, "opcodes", variants))

	assert.Equal(t, first.String(), second.String())
}
