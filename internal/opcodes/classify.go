package opcodes

import (
	"regexp"
	"strconv"
	"strings"
)

// Line shape classifiers for the instruction set description, tested in
// fixed order. The classifiers are not mutually exclusive, a line can
// register more than one variant or update the running comment context.
var (
	// mnemonic followed by a free text description, nothing else
	commentRE = regexp.MustCompile(`^([A-Z]{3}) ([a-zA-Z ()]+)$`)

	// addressing mode label, mnemonic, operand syntax, opcode, size, cycles
	addrModeRE = regexp.MustCompile(`^([a-zA-Z ,]+)\s{2,}([A-Z]{3}) [#$0-9,AXY()]+\s+\$([A-Z0-9]{2})\s+([0-9])\s+([0-9])(\+?)$`)

	// mnemonic, description, opcode, cycle count, no size column
	cycleOnlyRE = regexp.MustCompile(`^([A-Z]{3}) ([a-zA-Z ()]+)\s+\$([A-Z0-9]{2})\s+([0-9])$`)

	// addressing mode label, mnemonic, opcode, size, cycles, no operand syntax
	simpleRE = regexp.MustCompile(`^([a-zA-Z ,]+)\s{2,}([A-Z]{3})\s+\$([A-Z0-9]{2})\s+([0-9])\s+([0-9])(\+?)$`)

	// mnemonic, description and opcode only, size and cycles are implied
	impliedRE = regexp.MustCompile(`^([A-Z]{3}) ([a-zA-Z ()]+)\s+\$([A-Z0-9]{2})$`)
)

// classifyLine runs all classifiers against a line. Lines matching no
// classifier are skipped, the description feed contains headings and
// free form text that carry no instruction data.
func (b *Builder) classifyLine(line string) {
	matched := false

	if m := commentRE.FindStringSubmatch(line); m != nil {
		b.comment = m[2]
		matched = true
	}

	if m := addrModeRE.FindStringSubmatch(line); m != nil {
		b.addSuffixed(m[2], m[1], m[3], m[4], m[5], m[6] == "+")
		matched = true
	}

	if m := cycleOnlyRE.FindStringSubmatch(line); m != nil {
		b.comment = m[2]
		b.add(Variant{
			Name:    m[1],
			Opcode:  parseOpcode(m[3]),
			Size:    1,
			Cycles:  parseDigit(m[4]),
			Comment: m[2],
		})
		matched = true
	}

	if m := simpleRE.FindStringSubmatch(line); m != nil {
		b.addSuffixed(m[2], m[1], m[3], m[4], m[5], m[6] == "+")
		matched = true
	}

	if m := impliedRE.FindStringSubmatch(line); m != nil {
		b.comment = m[2]
		size := 1
		if strings.Contains(m[2], "Branch") {
			size = 2
		}
		b.add(Variant{
			Name:    m[1],
			Opcode:  parseOpcode(m[3]),
			Size:    size,
			Cycles:  2,
			Comment: m[2],
		})
		matched = true
	}

	if !matched {
		b.skipped++
	}
}

// addSuffixed registers a variant named after the mnemonic and the
// suffix of its addressing mode label. Lines with an unknown label are
// skipped like any other unclassifiable line.
func (b *Builder) addSuffixed(mnemonic, modeLabel, opcode, size, cycles string, penalty bool) {
	suffix, ok := suffixes[strings.TrimSpace(modeLabel)]
	if !ok {
		b.skipped++
		return
	}
	b.add(Variant{
		Name:             mnemonic + suffix,
		Opcode:           parseOpcode(opcode),
		Size:             parseDigit(size),
		Cycles:           parseDigit(cycles),
		PageCrossPenalty: penalty,
		Comment:          b.comment,
	})
}

// parseOpcode converts a 2 digit hex token, the classifier regular
// expressions guarantee the format.
func parseOpcode(s string) byte {
	value, _ := strconv.ParseUint(s, 16, 8)
	return byte(value)
}

func parseDigit(s string) int {
	value, _ := strconv.Atoi(s)
	return value
}
