package table

import (
	"strings"
	"testing"

	"github.com/retroenv/nesgoopcodes/internal/opcodes"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

const testFeed = "LDA (LoaD Accumulator)\n" +
	"\n" +
	"Immediate     LDA #$44      $A9  2   2\n" +
	"Zero Page     LDA $44       $A5  2   3\n" +
	"Absolute,X    LDA $4400,X   $BD  3   4+\n" +
	"\n" +
	"NOP (No OPeration)   $EA  2\n" +
	"BPL (Branch on PLus)          $10\n"

func buildTable(t *testing.T) *Table {
	t.Helper()

	builder := opcodes.NewBuilder(log.NewTestLogger(t))
	assert.NoError(t, builder.Read(strings.NewReader(testFeed)))

	tab, err := New(builder.Variants())
	assert.NoError(t, err)
	return tab
}

func TestTableAccessorsCoverAllOpcodes(t *testing.T) {
	t.Parallel()

	tab := buildTable(t)

	for i := 0; i < 256; i++ {
		opcode := byte(i)

		assert.NotEmpty(t, tab.Name(opcode))

		size := tab.Size(opcode)
		assert.True(t, size >= 1 && size <= 3)

		assert.True(t, tab.Cycles(opcode) >= 2)

		_, ok := modeNames[tab.Mode(opcode)]
		assert.True(t, ok)
	}
}

func TestTableClassifiedVariant(t *testing.T) {
	t.Parallel()

	tab := buildTable(t)

	assert.Equal(t, "LDA_IMM", tab.Name(0xa9))
	assert.Equal(t, 2, tab.Size(0xa9))
	assert.Equal(t, 2, tab.Cycles(0xa9))
	assert.Equal(t, Immediate, tab.Mode(0xa9))
	assert.True(t, tab.IsDefined(0xa9))

	assert.Equal(t, "LDA_ABX", tab.Name(0xbd))
	assert.Equal(t, AbsoluteX, tab.Mode(0xbd))
	assert.True(t, tab.PageCrossPenalty(0xbd))
}

func TestTableUnofficialVariant(t *testing.T) {
	t.Parallel()

	tab := buildTable(t)

	assert.Equal(t, "LAX_INX", tab.Name(0xa3))
	assert.Equal(t, 2, tab.Size(0xa3))
	assert.Equal(t, 6, tab.Cycles(0xa3))
	assert.Equal(t, IndirectX, tab.Mode(0xa3))
}

func TestTableUndefinedOpcodeFallback(t *testing.T) {
	t.Parallel()

	tab := buildTable(t)

	tests := []struct {
		name           string
		opcode         byte
		expectedSize   int
		expectedCycles int
	}{
		{name: "low nibble 0x0", opcode: 0x80, expectedSize: 2, expectedCycles: 2},
		{name: "low nibble 0x2", opcode: 0x02, expectedSize: 1, expectedCycles: 2},
		{name: "low nibble 0x4", opcode: 0x04, expectedSize: 2, expectedCycles: 3},
		{name: "low nibble 0xc", opcode: 0x0c, expectedSize: 3, expectedCycles: 4},
		{name: "other low nibble", opcode: 0x89, expectedSize: 1, expectedCycles: 2},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.False(t, tab.IsDefined(test.opcode))
			assert.Equal(t, "NOP", tab.Name(test.opcode))
			assert.Equal(t, test.expectedSize, tab.Size(test.opcode))
			assert.Equal(t, test.expectedCycles, tab.Cycles(test.opcode))
			assert.Equal(t, NoAddressing, tab.Mode(test.opcode))
		})
	}
}

func TestTableDeterminism(t *testing.T) {
	t.Parallel()

	first := buildTable(t)
	second := buildTable(t)

	for i := 0; i < 256; i++ {
		opcode := byte(i)
		assert.Equal(t, first.Name(opcode), second.Name(opcode))
		assert.Equal(t, first.Size(opcode), second.Size(opcode))
		assert.Equal(t, first.Cycles(opcode), second.Cycles(opcode))
		assert.Equal(t, first.Mode(opcode), second.Mode(opcode))
		assert.Equal(t, first.PageCrossPenalty(opcode), second.PageCrossPenalty(opcode))
	}
}

func TestTableOpcodeCollision(t *testing.T) {
	t.Parallel()

	variants := map[string]opcodes.Variant{
		"LDA_IMM": {Name: "LDA_IMM", Opcode: 0xa9, Size: 2, Cycles: 2},
		"LDX_IMM": {Name: "LDX_IMM", Opcode: 0xa9, Size: 2, Cycles: 2},
	}

	_, err := New(variants)
	assert.Error(t, err)
	assert.ErrorContains(t, err, "0xa9")
}

func TestDeriveMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected AddressingMode
	}{
		{name: "LDA_IMM", expected: Immediate},
		{name: "STA_ZPX", expected: ZeroPageX},
		{name: "JMP_IND", expected: Indirect},
		{name: "NOP_1C_ABX", expected: AbsoluteX},
		{name: "TXS", expected: NoAddressing},
		{name: "XXX_FOO", expected: NoAddressing},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.expected, DeriveMode(test.name))
		})
	}
}
