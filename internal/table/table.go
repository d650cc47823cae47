// Package table materializes the merged instruction variant map into a
// dense table indexed by opcode byte, used by the fetch/decode loop.
package table

import (
	"fmt"
	"sort"
	"strings"

	"github.com/retroenv/nesgoopcodes/internal/opcodes"
)

// AddressingMode defines the operand fetching scheme of an instruction.
type AddressingMode int

// Addressing modes of the 6502 CPU. NoAddressing covers accumulator and
// implied forms as well as opcodes without a canonical definition.
const (
	NoAddressing AddressingMode = iota
	Absolute
	AbsoluteX
	AbsoluteY
	Immediate
	Indirect
	IndirectX
	IndirectY
	ZeroPage
	ZeroPageX
	ZeroPageY
)

var modeNames = map[AddressingMode]string{
	NoAddressing: "none",
	Absolute:     "absolute",
	AbsoluteX:    "absolute,X",
	AbsoluteY:    "absolute,Y",
	Immediate:    "immediate",
	Indirect:     "indirect",
	IndirectX:    "indirect,X",
	IndirectY:    "indirect,Y",
	ZeroPage:     "zeropage",
	ZeroPageX:    "zeropage,X",
	ZeroPageY:    "zeropage,Y",
}

func (m AddressingMode) String() string {
	return modeNames[m]
}

// modeSuffixes maps the variant name suffix to the addressing mode.
var modeSuffixes = map[string]AddressingMode{
	"ABS": Absolute,
	"ABX": AbsoluteX,
	"ABY": AbsoluteY,
	"IMM": Immediate,
	"IND": Indirect,
	"INX": IndirectX,
	"INY": IndirectY,
	"ZP":  ZeroPage,
	"ZPX": ZeroPageX,
	"ZPY": ZeroPageY,
}

// Entry is the table slot for one opcode byte value.
type Entry struct {
	Name             string
	Size             int
	Cycles           int
	Mode             AddressingMode
	PageCrossPenalty bool

	defined bool
}

// sentinel marks opcode bytes without a canonical definition. The
// accessors recognize it and compute size and cycles from the opcode
// low nibble instead.
var sentinel = Entry{
	Name: "NOP",
	Mode: NoAddressing,
}

// Table is the dense 256 slot lookup table. It is immutable after
// construction and safe for concurrent reads.
type Table struct {
	entries [256]Entry
}

// New builds the dense table from the merged variant map. Every slot
// starts as the sentinel entry, each variant then claims the slot of
// its opcode byte. Two variants claiming the same opcode byte would
// silently shadow each other, so this is rejected as a build error.
func New(variants map[string]opcodes.Variant) (*Table, error) {
	t := &Table{}
	for i := range t.entries {
		t.entries[i] = sentinel
	}

	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)

	claimed := map[byte]string{}
	for _, name := range names {
		variant := variants[name]
		if previous, ok := claimed[variant.Opcode]; ok {
			return nil, fmt.Errorf("opcode 0x%02x defined by both %s and %s",
				variant.Opcode, previous, name)
		}
		claimed[variant.Opcode] = name

		t.entries[variant.Opcode] = Entry{
			Name:             name,
			Size:             variant.Size,
			Cycles:           variant.Cycles,
			Mode:             DeriveMode(name),
			PageCrossPenalty: variant.PageCrossPenalty,
			defined:          true,
		}
	}
	return t, nil
}

// DeriveMode returns the addressing mode encoded in the variant name
// suffix. Names without a known suffix are accumulator or implied forms
// and carry no addressing mode.
func DeriveMode(name string) AddressingMode {
	index := strings.LastIndexByte(name, '_')
	if index == -1 {
		return NoAddressing
	}
	mode, ok := modeSuffixes[name[index+1:]]
	if !ok {
		return NoAddressing
	}
	return mode
}

// Name returns the variant name stored for the opcode byte, "NOP" for
// opcodes without a canonical definition.
func (t *Table) Name(opcode byte) string {
	return t.entries[opcode].Name
}

// Size returns the instruction length in bytes. Opcodes without a
// canonical definition behave like the undocumented NOP reads, their
// operand size follows from the opcode low nibble:
// https://wiki.nesdev.com/w/index.php/CPU_unofficial_opcodes
func (t *Table) Size(opcode byte) int {
	entry := &t.entries[opcode]
	if entry.defined {
		return entry.Size
	}
	switch opcode & 0x0f {
	case 0x00: // #i
		return 2
	case 0x02: // #
		return 1
	case 0x04: // d
		return 2
	case 0x0c: // a
		return 3
	default:
		return 1
	}
}

// Cycles returns the base cycle count. Opcodes without a canonical
// definition take the cycles of the undocumented NOP read matching
// their low nibble operand form.
func (t *Table) Cycles(opcode byte) int {
	entry := &t.entries[opcode]
	if entry.defined {
		return entry.Cycles
	}
	switch opcode & 0x0f {
	case 0x04: // d
		return 3
	case 0x0c: // a
		return 4
	default:
		return 2
	}
}

// Mode returns the addressing mode of the opcode, NoAddressing for
// opcodes without a canonical definition.
func (t *Table) Mode(opcode byte) AddressingMode {
	return t.entries[opcode].Mode
}

// PageCrossPenalty returns whether the opcode takes an extra cycle when
// its operand access crosses a page boundary.
func (t *Table) PageCrossPenalty(opcode byte) bool {
	return t.entries[opcode].PageCrossPenalty
}

// IsDefined returns whether the opcode byte has a canonical definition.
func (t *Table) IsDefined(opcode byte) bool {
	return t.entries[opcode].defined
}
