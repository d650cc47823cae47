package opcodes

import (
	"bufio"
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/log"
)

// Builder classifies an instruction set description feed and merges the
// result with the curated unofficial opcode variants.
type Builder struct {
	logger *log.Logger

	variants map[string]Variant
	comment  string // running description context for lines that carry none
	skipped  int
}

// NewBuilder returns a builder with an empty variant map.
func NewBuilder(logger *log.Logger) *Builder {
	return &Builder{
		logger:   logger,
		variants: map[string]Variant{},
	}
}

// Read consumes the description feed line by line and merges in the
// unofficial opcode variants afterwards. Insert order is load-bearing:
// a later definition of a variant name replaces an earlier one, so the
// unofficial variants win every name collision with the textual pass.
func (b *Builder) Read(reader io.Reader) error {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		b.classifyLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading instruction description: %w", err)
	}

	for _, variant := range unofficialVariants {
		b.add(variant)
	}

	b.logger.Debug("classified instruction description",
		log.Int("variants", len(b.variants)),
		log.Int("skipped_lines", b.skipped))
	return nil
}

// Variants returns the merged variant map, keyed by variant name.
func (b *Builder) Variants() map[string]Variant {
	return b.variants
}

func (b *Builder) add(variant Variant) {
	b.variants[variant.Name] = variant
}
