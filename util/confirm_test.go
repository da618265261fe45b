package util

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestConfirmAction(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
		err      error
	}{
		{
			name:     "yes input",
			input:    "y\n",
			expected: true,
			err:      nil,
		},
		{
			name:     "yes word uppercase",
			input:    "YES\n",
			expected: true,
			err:      nil,
		},
		{
			name:     "no input",
			input:    "n\n",
			expected: false,
			err:      nil,
		},
		{
			name:     "empty input defaults to no",
			input:    "\n",
			expected: false,
			err:      nil,
		},
		{
			name:     "input without newline",
			input:    "yes",
			expected: false,
			err:      io.EOF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := strings.NewReader(tt.input)
			out := &bytes.Buffer{}
			ok, err := ConfirmAction("delete 3 files", in, out)
			if err != tt.err || ok != tt.expected {
				t.Errorf("ConfirmAction(%q) = (%t, %v), want (%t, %v)", tt.input, ok, err, tt.expected, tt.err)
			}
			if !strings.Contains(out.String(), "(y/N)") {
				t.Errorf("prompt output %q missing (y/N) hint", out.String())
			}
		})
	}
}
