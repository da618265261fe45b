package cmd

import (
	"strings"
	"testing"

	"github.com/dupescout/dupescout/testutil"
)

func TestZerosFindsZeroFilledFiles(t *testing.T) {
	dir := testutil.TempDir(t, "dupescout-zeros")
	zeroFile := testutil.CreateTestFile(t, dir, "blank.bin", strings.Repeat("\x00", 4096))
	testutil.CreateTestFile(t, dir, "normal.bin", "actual content")
	testutil.CreateTestFile(t, dir, "almost.bin", strings.Repeat("\x00", 100)+"x")
	testutil.CreateTestFile(t, dir, "empty.bin", "")

	output, err := runCommand(t, "zeros", dir)
	if err != nil {
		t.Fatalf("zeros returned error: %v", err)
	}

	if !strings.Contains(output, zeroFile) {
		t.Errorf("zero-filled file not reported: %q", output)
	}
	for _, name := range []string{"normal.bin", "almost.bin", "empty.bin"} {
		if strings.Contains(output, name) {
			t.Errorf("%s should not be reported: %q", name, output)
		}
	}
}

func TestZerosEmptyTree(t *testing.T) {
	dir := testutil.TempDir(t, "dupescout-zeros")

	output, err := runCommand(t, "zeros", dir)
	if err != nil {
		t.Fatalf("zeros returned error: %v", err)
	}
	if strings.TrimSpace(output) != "" {
		t.Errorf("empty tree produced output: %q", output)
	}
}
