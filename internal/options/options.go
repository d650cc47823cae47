// Package options contains the program options.
package options

// Program options of the opcode table compiler.
type Program struct {
	Input   string // instruction set description file
	Output  string // generated .go file, printed on console if empty
	Package string // package name used in the generated file

	Inspect bool // run the interactive table inspector instead of generating
	Debug   bool
	Quiet   bool
}
