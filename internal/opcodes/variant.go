// Package opcodes builds the 6502 instruction variant set from a textual
// instruction set description.
package opcodes

// Variant describes one instruction and addressing mode combination.
type Variant struct {
	Name             string // mnemonic plus addressing mode suffix
	Opcode           byte
	Size             int  // instruction length in bytes, including the opcode byte
	Cycles           int  // base cycle count, before dynamic penalties
	PageCrossPenalty bool // +1 cycle when the operand access crosses a page boundary
	Comment          string
}

// suffixes maps the addressing mode label of the instruction set
// description to the variant name suffix. Accumulator and implied
// forms carry no suffix.
var suffixes = map[string]string{
	"Absolute":    "_ABS",
	"Absolute,X":  "_ABX",
	"Absolute,Y":  "_ABY",
	"Accumulator": "",
	"Immediate":   "_IMM",
	"Implied":     "",
	"Indirect":    "_IND",
	"Indirect,X":  "_INX",
	"Indirect,Y":  "_INY",
	"Zero Page":   "_ZP",
	"Zero Page,X": "_ZPX",
	"Zero Page,Y": "_ZPY",
}
