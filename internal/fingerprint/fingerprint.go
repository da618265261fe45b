// Package fingerprint turns files into comparable keys.
//
// A Strategy is a tagged value, not a type hierarchy: one Compute function
// consumes it and dispatches on the kind. Exact fingerprints are streaming
// digests and compare by equality; perceptual fingerprints are 64-bit
// phashes and compare by hamming distance.
package fingerprint

import (
	"fmt"

	"github.com/dupescout/dupescout/internal/constants"
	"github.com/dupescout/dupescout/internal/walker"
)

// Strategy selects how files are fingerprinted.
type Strategy struct {
	Kind      string  // constants.StrategyExact or StrategyPerceptual
	Algorithm string  // exact only
	Threshold float64 // perceptual only, normalized to [0, 1]
}

// Fingerprint is the derived key for one file.
type Fingerprint struct {
	// Key is the hex digest under the exact strategy and the hex phash
	// under the perceptual one. Exact grouping compares Keys.
	Key string

	// PHash carries the raw perceptual hash for distance computation.
	// Zero under the exact strategy.
	PHash uint64
}

// Compute fingerprints entry under the given strategy. The error, when
// non-nil, is one of the scanerr per-file types and means "skip this file".
func Compute(entry walker.FileEntry, strategy Strategy) (Fingerprint, error) {
	switch strategy.Kind {
	case constants.StrategyExact:
		return ExactFile(entry.Path, strategy.Algorithm)
	case constants.StrategyPerceptual:
		return PerceptualFile(entry.Path)
	default:
		return Fingerprint{}, fmt.Errorf("unknown strategy kind: %s", strategy.Kind)
	}
}

// ImageExtensions is the default allow list applied when the perceptual
// strategy runs without an explicit --extensions filter.
var ImageExtensions = []string{
	".bmp", ".gif", ".jpeg", ".jpg", ".png", ".tif", ".tiff", ".webp",
}
