package fingerprint

import (
	"fmt"
	"image"
	"os"

	"github.com/artyom/phash"
	"github.com/disintegration/imaging"

	"github.com/dupescout/dupescout/internal/constants"
	"github.com/dupescout/dupescout/internal/scanerr"
)

// PerceptualFile decodes the image and computes its 64-bit perceptual hash.
// Undecodable content is an UnsupportedFormatError, a vanished or unreadable
// file a ReadError; both mean "skip".
func PerceptualFile(path string) (Fingerprint, error) {
	file, err := os.Open(path)
	if err != nil {
		return Fingerprint{}, &scanerr.ReadError{Path: path, Err: err}
	}
	defer file.Close()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return Fingerprint{}, &scanerr.UnsupportedFormatError{Path: path, Err: err}
	}

	return PerceptualImage(img)
}

// PerceptualImage hashes an already-decoded image.
func PerceptualImage(img image.Image) (Fingerprint, error) {
	hash, err := phash.Get(img, func(img image.Image, w, h int) image.Image {
		return imaging.Resize(img, w, h, imaging.Lanczos)
	})
	if err != nil {
		return Fingerprint{}, err
	}

	return Fingerprint{Key: fmt.Sprintf("%016x", hash), PHash: hash}, nil
}

// Distance is the normalized hamming distance between two perceptual
// fingerprints, in [0, 1]. Files compare "similar" when it is at or below
// the strategy threshold.
func Distance(a, b Fingerprint) float64 {
	return float64(phash.Distance(a.PHash, b.PHash)) / constants.PerceptualHashBits
}
