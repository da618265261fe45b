package util

import (
	"testing"
)

func TestHumanReadableSize(t *testing.T) {
	tests := []struct {
		name  string
		input int64
		want  string
	}{
		{
			name:  "zero bytes",
			input: 0,
			want:  "0 B",
		},
		{
			name:  "bytes below KB boundary",
			input: 1023,
			want:  "1023 B",
		},
		{
			name:  "exactly 1 KB",
			input: 1024,
			want:  "1.0 KB",
		},
		{
			name:  "fractional KB",
			input: 1536,
			want:  "1.5 KB",
		},
		{
			name:  "KB just under MB",
			input: 1048575,
			want:  "1024.0 KB",
		},
		{
			name:  "exactly 1 MB",
			input: 1048576,
			want:  "1.0 MB",
		},
		{
			name:  "fractional GB",
			input: 2684354560,
			want:  "2.5 GB",
		},
		{
			name:  "exactly 1 TB",
			input: 1099511627776,
			want:  "1.0 TB",
		},
		{
			name:  "beyond TB stays in TB",
			input: 1099511627776000,
			want:  "1000.0 TB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HumanReadableSize(tt.input)
			if got != tt.want {
				t.Errorf("HumanReadableSize(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{
			name:  "bare number is bytes",
			input: "500",
			want:  500,
		},
		{
			name:  "zero",
			input: "0",
			want:  0,
		},
		{
			name:  "kilobytes",
			input: "10KB",
			want:  10 * 1024,
		},
		{
			name:  "megabytes lowercase",
			input: "1mb",
			want:  1024 * 1024,
		},
		{
			name:  "gigabytes with space",
			input: "2 GB",
			want:  2 * 1024 * 1024 * 1024,
		},
		{
			name:  "explicit bytes suffix",
			input: "42B",
			want:  42,
		},
		{
			name:  "surrounding whitespace",
			input: " 1KB ",
			want:  1024,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "non-numeric",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "decimal not supported",
			input:   "1.5MB",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseSize(%q) expected error, got %d", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseSize(%q) unexpected error: %v", tt.input, err)
				return
			}
			if got != tt.want {
				t.Errorf("ParseSize(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
