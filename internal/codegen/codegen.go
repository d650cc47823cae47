// Package codegen emits the opcode lookup table as a self contained Go
// source file for consumption by an emulator fetch/decode loop.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"sort"

	"github.com/retroenv/nesgoopcodes/internal/opcodes"
	"github.com/retroenv/nesgoopcodes/internal/table"
)

// modeIdents maps addressing modes to the identifiers emitted into the
// generated source.
var modeIdents = map[table.AddressingMode]string{
	table.NoAddressing: "NoAddressing",
	table.Absolute:     "Absolute",
	table.AbsoluteX:    "AbsoluteX",
	table.AbsoluteY:    "AbsoluteY",
	table.Immediate:    "Immediate",
	table.Indirect:     "Indirect",
	table.IndirectX:    "IndirectX",
	table.IndirectY:    "IndirectY",
	table.ZeroPage:     "ZeroPage",
	table.ZeroPageX:    "ZeroPageX",
	table.ZeroPageY:    "ZeroPageY",
}

// Write emits the generated artifact for the merged variant map:
// a named byte constant per variant, the dense 256 entry table and the
// lookup accessors with the fallback rules for undefined opcodes.
// Variants are emitted in sorted name order so that identical input
// produces identical output.
func Write(writer io.Writer, packageName string, variants map[string]opcodes.Variant) error {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	writeHeader(&buf, packageName)
	writeConstants(&buf, names, variants)
	writeEntries(&buf, names, variants)
	writeAccessors(&buf)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated source: %w", err)
	}
	if _, err := writer.Write(src); err != nil {
		return fmt.Errorf("writing generated source: %w", err)
	}
	return nil
}

func writeHeader(buf *bytes.Buffer, packageName string) {
	fmt.Fprintf(buf, "// Code generated by nesgoopcodes. DO NOT EDIT.\n\n")
	fmt.Fprintf(buf, "package %s\n\n", packageName)

	buf.WriteString(`// AddressingMode defines the operand fetching scheme of an instruction.
type AddressingMode int

// Addressing modes of the 6502 CPU.
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

// Entry describes the instruction occupying one opcode byte value.
type Entry struct {
	Name             string
	Size             int
	Cycles           int
	Mode             AddressingMode
	PageCrossPenalty bool
	Defined          bool
}

`)
}

func writeConstants(buf *bytes.Buffer, names []string, variants map[string]opcodes.Variant) {
	buf.WriteString("// Instruction variant opcode bytes.\nconst (\n")
	for _, name := range names {
		variant := variants[name]
		fmt.Fprintf(buf, "\t%s byte = 0x%02x", name, variant.Opcode)
		if variant.Comment != "" {
			fmt.Fprintf(buf, " // %s", variant.Comment)
		}
		buf.WriteString("\n")
	}
	buf.WriteString(")\n\n")
}

func writeEntries(buf *bytes.Buffer, names []string, variants map[string]opcodes.Variant) {
	buf.WriteString("// Entries maps every opcode byte value to its instruction metadata.\n")
	buf.WriteString("// Unlisted slots stay zero valued, the accessors treat them as\n")
	buf.WriteString("// undefined opcodes.\nvar Entries = [256]Entry{\n")
	for _, name := range names {
		variant := variants[name]
		fmt.Fprintf(buf, "\t%s: {Name: %q, Size: %d, Cycles: %d, Mode: %s",
			name, name, variant.Size, variant.Cycles, modeIdents[table.DeriveMode(name)])
		if variant.PageCrossPenalty {
			buf.WriteString(", PageCrossPenalty: true")
		}
		buf.WriteString(", Defined: true},\n")
	}
	buf.WriteString("}\n\n")
}

func writeAccessors(buf *bytes.Buffer) {
	buf.WriteString(`// Name returns the variant name of the opcode, "NOP" for opcodes
// without a canonical definition.
func Name(opcode byte) string {
	if entry := &Entries[opcode]; entry.Defined {
		return entry.Name
	}
	return "NOP"
}

// Size returns the instruction length in bytes. Undefined opcodes
// behave like the undocumented NOP reads, their operand size follows
// from the opcode low nibble.
func Size(opcode byte) int {
	if entry := &Entries[opcode]; entry.Defined {
		return entry.Size
	}
	switch opcode & 0x0f {
	case 0x00, 0x04:
		return 2
	case 0x0c:
		return 3
	default:
		return 1
	}
}

// Cycles returns the base cycle count before dynamic penalties.
func Cycles(opcode byte) int {
	if entry := &Entries[opcode]; entry.Defined {
		return entry.Cycles
	}
	switch opcode & 0x0f {
	case 0x04:
		return 3
	case 0x0c:
		return 4
	default:
		return 2
	}
}

// Mode returns the addressing mode of the opcode.
func Mode(opcode byte) AddressingMode {
	return Entries[opcode].Mode
}

// PageCrossPenalty returns whether the opcode takes an extra cycle when
// its operand access crosses a page boundary.
func PageCrossPenalty(opcode byte) bool {
	return Entries[opcode].PageCrossPenalty
}
`)
}
