// Package testutil provides common testing utilities for dupescout
package testutil

import (
	"crypto/rand"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// TempDir creates a temporary directory for testing
func TempDir(t *testing.T, prefix string) string {
	t.Helper()
	dir, err := os.MkdirTemp("", prefix)
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	t.Cleanup(func() {
		if err := os.RemoveAll(dir); err != nil {
			t.Errorf("Failed to clean up temp dir %s: %v", dir, err)
		}
	})

	return dir
}

// CreateTestFile creates a test file with specified content
func CreateTestFile(t *testing.T, dir, filename, content string) string {
	t.Helper()
	filePath := filepath.Join(dir, filename)

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	err := os.WriteFile(filePath, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to create test file %s: %v", filePath, err)
	}

	return filePath
}

// CreateTestFileWithSize creates a test file with random content of specified size
func CreateTestFileWithSize(t *testing.T, dir, filename string, size int64) string {
	t.Helper()
	filePath := filepath.Join(dir, filename)

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		t.Fatalf("Failed to create test file %s: %v", filePath, err)
	}
	defer file.Close()

	written, err := io.CopyN(file, rand.Reader, size)
	if err != nil {
		t.Fatalf("Failed to write test data to %s: %v", filePath, err)
	}

	if written != size {
		t.Fatalf("Expected to write %d bytes, but wrote %d", size, written)
	}

	return filePath
}

// GradientImage builds a deterministic gradient image, optionally inverted.
// Gradients survive perceptual hashing better than flat fills, which collapse
// to degenerate hashes.
func GradientImage(w, h int, inverted bool) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8((x * 255) / w)
			g := uint8((y * 255) / h)
			if inverted {
				v = 255 - v
				g = 255 - g
			}
			img.Set(x, y, color.RGBA{R: v, G: g, B: v / 2, A: 255})
		}
	}
	return img
}

// WithBorder returns a copy of img with a 1-pixel black border drawn on top.
func WithBorder(img image.Image) image.Image {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			onEdge := x == bounds.Min.X || y == bounds.Min.Y ||
				x == bounds.Max.X-1 || y == bounds.Max.Y-1
			if onEdge {
				out.Set(x, y, color.RGBA{A: 255})
			} else {
				out.Set(x, y, img.At(x, y))
			}
		}
	}
	return out
}

// SavePNG writes img to dir/filename and returns the full path.
func SavePNG(t *testing.T, dir, filename string, img image.Image) string {
	t.Helper()
	filePath := filepath.Join(dir, filename)

	file, err := os.Create(filePath)
	if err != nil {
		t.Fatalf("Failed to create image file %s: %v", filePath, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		t.Fatalf("Failed to encode PNG %s: %v", filePath, err)
	}

	return filePath
}
