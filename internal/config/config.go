// Package config builds the immutable scan configuration from flags and an
// optional YAML defaults file. The configuration is assembled once at
// startup and passed to each pipeline stage; nothing reads it from ambient
// state afterwards.
package config

import (
	"runtime"
	"strings"

	"github.com/dupescout/dupescout/internal/constants"
	"github.com/dupescout/dupescout/internal/scanerr"
)

// ScanConfig describes one duplicate-finder run.
type ScanConfig struct {
	Roots []string

	// Fingerprint strategy
	Strategy  string
	Algorithm string
	Threshold float64

	// Walk filters
	MinSize        int64
	MaxSize        int64
	Extensions     []string
	Exclude        []string
	MaxDepth       int
	FollowSymlinks bool

	// Action phase
	Action    string
	DestDir   string
	DryRun    bool
	AssumeYes bool

	// Execution
	Workers int
	SortKey string
	Quiet   bool
	Verbose bool
}

var validAlgorithms = map[string]bool{
	constants.HashAlgorithmXXHash: true,
	constants.HashAlgorithmSHA1:   true,
	constants.HashAlgorithmSHA256: true,
	constants.HashAlgorithmSHA512: true,
	constants.HashAlgorithmBLAKE3: true,
}

// Validate checks flag combinations before any I/O happens. A non-nil
// return is always a *scanerr.ConfigError and maps to exit code 2.
func (c *ScanConfig) Validate() error {
	if len(c.Roots) == 0 {
		return scanerr.NewConfigError("at least one root directory is required")
	}

	switch c.Strategy {
	case constants.StrategyExact:
		if !validAlgorithms[c.Algorithm] {
			return scanerr.NewConfigError("unsupported hash algorithm: %s", c.Algorithm)
		}
	case constants.StrategyPerceptual:
		if c.Threshold < 0 || c.Threshold > 1 {
			return scanerr.NewConfigError("threshold must be in [0, 1], got %g", c.Threshold)
		}
	default:
		return scanerr.NewConfigError("unknown strategy: %s (want %s or %s)",
			c.Strategy, constants.StrategyExact, constants.StrategyPerceptual)
	}

	switch c.Action {
	case constants.ActionReport:
	case constants.ActionDelete:
	case constants.ActionMove:
		if c.DestDir == "" {
			return scanerr.NewConfigError("--action move requires --dest")
		}
	default:
		return scanerr.NewConfigError("unknown action: %s", c.Action)
	}

	switch c.SortKey {
	case constants.SortBySize, constants.SortByCount, constants.SortByPath:
	default:
		return scanerr.NewConfigError("unknown sort key: %s", c.SortKey)
	}

	if c.MinSize < 0 {
		return scanerr.NewConfigError("--min-size must not be negative")
	}
	if c.MaxSize > 0 && c.MaxSize < c.MinSize {
		return scanerr.NewConfigError("--max-size %d is below --min-size %d", c.MaxSize, c.MinSize)
	}

	if c.Workers < 1 {
		return scanerr.NewConfigError("--workers must be at least 1")
	}

	return nil
}

// NormalizeExtensions lowercases extension filters and guarantees a leading
// dot, so "JPG" and ".jpg" select the same files.
func NormalizeExtensions(exts []string) []string {
	if len(exts) == 0 {
		return nil
	}
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

// DefaultWorkers is the extractor pool size when --workers is not given.
func DefaultWorkers() int {
	return runtime.NumCPU()
}
