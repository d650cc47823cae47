package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/nesgoopcodes/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "opcodes.txt"},
			want: options.Program{Input: "opcodes.txt", Package: "opcodes"},
		},
		{
			name: "output and package flags",
			args: []string{"prog", "-o", "table.go", "-p", "cpu", "opcodes.txt"},
			want: options.Program{Input: "opcodes.txt", Output: "table.go", Package: "cpu"},
		},
		{
			name: "inspect flag",
			args: []string{"prog", "-i", "opcodes.txt"},
			want: options.Program{Input: "opcodes.txt", Package: "opcodes", Inspect: true},
		},
		{
			name: "quiet flag",
			args: []string{"prog", "-q", "opcodes.txt"},
			want: options.Program{Input: "opcodes.txt", Package: "opcodes", Quiet: true},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = test.args

			opts, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, test.want, opts)
		})
	}
}

func TestParseFlagsMissingInput(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog"}

	_, err := ParseFlags()
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
}

func TestParseFlagsInvalidPackageName(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog", "-p", "1bad", "opcodes.txt"}

	_, err := ParseFlags()
	assert.Error(t, err)
}

func TestParseFlagsArgumentOrder(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog", "opcodes.txt", "-q"}

	_, err := ParseFlags()
	assert.Error(t, err)
}
