// Package inspect implements an interactive shell to query a built
// opcode lookup table.
package inspect

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/cmd"
	"github.com/beevik/prefixtree/v2"
	"github.com/retroenv/nesgoopcodes/internal/opcodes"
	"github.com/retroenv/nesgoopcodes/internal/table"
)

var errQuit = errors.New("quit")

var cmds *cmd.Tree

func init() {
	cmds = newCommandTree()
}

func newCommandTree() *cmd.Tree {
	tree := cmd.NewTree(cmd.TreeDescriptor{Name: "Inspector"})
	tree.AddCommand(cmd.CommandDescriptor{
		Name:  "help",
		Brief: "Display command help",
		Usage: "help [command]",
		Data:  (*Inspector).cmdHelp,
	})
	tree.AddCommand(cmd.CommandDescriptor{
		Name:  "info",
		Brief: "Show the metadata of an opcode byte",
		Description: "Show name, size, cycle count, addressing mode and page" +
			" cross penalty of the given opcode byte. Undefined opcodes" +
			" report their computed fallback values.",
		Usage: "info <hex opcode>",
		Data:  (*Inspector).cmdInfo,
	})
	tree.AddCommand(cmd.CommandDescriptor{
		Name:  "find",
		Brief: "Find instruction variants by name prefix",
		Usage: "find <name prefix>",
		Data:  (*Inspector).cmdFind,
	})
	tree.AddCommand(cmd.CommandDescriptor{
		Name:  "dump",
		Brief: "Dump all 256 table slots",
		Data:  (*Inspector).cmdDump,
	})
	tree.AddCommand(cmd.CommandDescriptor{
		Name:  "quit",
		Brief: "Quit the inspector",
		Data:  (*Inspector).cmdQuit,
	})
	_ = tree.AddShortcut("?", "help")
	_ = tree.AddShortcut("i", "info")
	_ = tree.AddShortcut("f", "find")
	_ = tree.AddShortcut("q", "quit")
	return tree
}

// Inspector answers queries against an immutable opcode table.
type Inspector struct {
	tab   *table.Table
	tree  *prefixtree.Tree[opcodes.Variant]
	names []string // sorted variant names, for prefix listings

	output      *bufio.Writer
	interactive bool
}

// New creates an inspector for the given table and variant map.
func New(tab *table.Table, variants map[string]opcodes.Variant) *Inspector {
	in := &Inspector{
		tab:  tab,
		tree: prefixtree.New[opcodes.Variant](),
	}
	for name, variant := range variants {
		in.tree.Add(strings.ToLower(name), variant)
		in.names = append(in.names, name)
	}
	sort.Strings(in.names)
	return in
}

// Run accepts inspector commands from a reader and writes the results
// to a writer. If interactive, a prompt is displayed while waiting for
// the next command.
func (in *Inspector) Run(reader io.Reader, writer io.Writer, interactive bool) error {
	input := bufio.NewScanner(reader)
	in.output = bufio.NewWriter(writer)
	in.interactive = interactive
	defer in.output.Flush()

	for {
		in.prompt()
		if !input.Scan() {
			if err := input.Err(); err != nil {
				return fmt.Errorf("reading command: %w", err)
			}
			return nil
		}

		line := strings.TrimSpace(input.Text())
		if line == "" {
			continue
		}

		command, args, err := cmds.LookupCommand(line)
		switch {
		case errors.Is(err, cmd.ErrNotFound):
			in.println("Command not found.")
			continue
		case errors.Is(err, cmd.ErrAmbiguous):
			in.println("Command is ambiguous.")
			continue
		case err != nil:
			in.printf("ERROR: %v\n", err)
			continue
		}

		handler := command.Data.(func(*Inspector, []string) error)
		if err := handler(in, args); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}
}

func (in *Inspector) prompt() {
	if in.interactive {
		in.printf("* ")
	}
}

func (in *Inspector) printf(format string, args ...any) {
	fmt.Fprintf(in.output, format, args...)
	in.output.Flush()
}

func (in *Inspector) println(args ...any) {
	fmt.Fprintln(in.output, args...)
	in.output.Flush()
}

func (in *Inspector) cmdHelp(args []string) error {
	if len(args) > 0 {
		c, _, err := cmds.LookupCommand(strings.Join(args, " "))
		if err == nil && c.Usage != "" {
			in.printf("Syntax: %s\n", c.Usage)
			return nil
		}
	}

	in.printf("%s commands:\n", cmds.Name)
	for _, c := range cmds.Commands() {
		if c.Brief != "" {
			in.printf("    %-8s %s\n", c.Name, c.Brief)
		}
	}
	return nil
}

func (in *Inspector) cmdInfo(args []string) error {
	if len(args) < 1 {
		in.println("Syntax: info <hex opcode>")
		return nil
	}

	token := strings.TrimPrefix(strings.TrimPrefix(args[0], "$"), "0x")
	value, err := strconv.ParseUint(token, 16, 8)
	if err != nil {
		in.printf("'%s' is not an opcode byte value\n", args[0])
		return nil
	}

	in.printEntry(byte(value))
	return nil
}

func (in *Inspector) cmdFind(args []string) error {
	if len(args) < 1 {
		in.println("Syntax: find <name prefix>")
		return nil
	}

	prefix := strings.ToLower(args[0])
	if variant, err := in.tree.FindValue(prefix); err == nil {
		in.printEntry(variant.Opcode)
		return nil
	}

	// ambiguous or unknown prefix, list all matching names
	matches := 0
	for _, name := range in.names {
		if strings.HasPrefix(strings.ToLower(name), prefix) {
			in.println(name)
			matches++
		}
	}
	if matches == 0 {
		in.printf("no variant matches '%s'\n", args[0])
	}
	return nil
}

func (in *Inspector) cmdDump([]string) error {
	for i := 0; i < 256; i++ {
		in.printEntry(byte(i))
	}
	return nil
}

func (in *Inspector) cmdQuit([]string) error {
	return errQuit
}

func (in *Inspector) printEntry(opcode byte) {
	marker := ""
	if !in.tab.IsDefined(opcode) {
		marker = " (undefined)"
	}
	penalty := ""
	if in.tab.PageCrossPenalty(opcode) {
		penalty = " +1 on page cross"
	}
	in.printf("0x%02x %-10s size=%d cycles=%d mode=%s%s%s\n",
		opcode, in.tab.Name(opcode), in.tab.Size(opcode),
		in.tab.Cycles(opcode), in.tab.Mode(opcode), penalty, marker)
}
