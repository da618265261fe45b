package fingerprint

import (
	"errors"
	"testing"

	"github.com/dupescout/dupescout/internal/scanerr"
	"github.com/dupescout/dupescout/testutil"
)

func TestPerceptualFileSimilarity(t *testing.T) {
	dir := testutil.TempDir(t, "dupescout-phash")

	base := testutil.GradientImage(256, 256, false)
	bordered := testutil.WithBorder(base)
	inverted := testutil.GradientImage(256, 256, true)

	basePath := testutil.SavePNG(t, dir, "base.png", base)
	borderPath := testutil.SavePNG(t, dir, "border.png", bordered)
	invertedPath := testutil.SavePNG(t, dir, "inverted.png", inverted)

	fpBase, err := PerceptualFile(basePath)
	if err != nil {
		t.Fatalf("PerceptualFile(base) unexpected error: %v", err)
	}
	fpBorder, err := PerceptualFile(borderPath)
	if err != nil {
		t.Fatalf("PerceptualFile(border) unexpected error: %v", err)
	}
	fpInverted, err := PerceptualFile(invertedPath)
	if err != nil {
		t.Fatalf("PerceptualFile(inverted) unexpected error: %v", err)
	}

	const threshold = 0.1

	if d := Distance(fpBase, fpBorder); d > threshold {
		t.Errorf("1-pixel border distance = %g, want <= %g", d, threshold)
	}
	if d := Distance(fpBase, fpInverted); d <= threshold {
		t.Errorf("inverted image distance = %g, want > %g", d, threshold)
	}
}

func TestPerceptualFileDeterministic(t *testing.T) {
	dir := testutil.TempDir(t, "dupescout-phash")
	path := testutil.SavePNG(t, dir, "img.png", testutil.GradientImage(128, 128, false))

	first, err := PerceptualFile(path)
	if err != nil {
		t.Fatalf("PerceptualFile() unexpected error: %v", err)
	}
	again, err := PerceptualFile(path)
	if err != nil {
		t.Fatalf("PerceptualFile() unexpected error: %v", err)
	}
	if first.PHash != again.PHash || first.Key != again.Key {
		t.Errorf("PerceptualFile() not deterministic: %+v vs %+v", first, again)
	}
	if Distance(first, again) != 0 {
		t.Errorf("Distance(x, x) = %g, want 0", Distance(first, again))
	}
}

func TestPerceptualFileUnsupported(t *testing.T) {
	dir := testutil.TempDir(t, "dupescout-phash")
	path := testutil.CreateTestFile(t, dir, "notes.txt", "this is not an image")

	_, err := PerceptualFile(path)
	var unsupported *scanerr.UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Errorf("PerceptualFile(text) error = %T, want *scanerr.UnsupportedFormatError", err)
	}
}

func TestPerceptualFileVanished(t *testing.T) {
	dir := testutil.TempDir(t, "dupescout-phash")

	_, err := PerceptualFile(dir + "/missing.png")
	var readErr *scanerr.ReadError
	if !errors.As(err, &readErr) {
		t.Errorf("PerceptualFile(missing) error = %T, want *scanerr.ReadError", err)
	}
}
