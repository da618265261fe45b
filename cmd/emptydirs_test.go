package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dupescout/dupescout/testutil"
)

func mkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
}

func TestEmptydirsFind(t *testing.T) {
	dir := testutil.TempDir(t, "dupescout-emptydirs")
	mkdirAll(t, filepath.Join(dir, "empty"))
	mkdirAll(t, filepath.Join(dir, "full"))
	testutil.CreateTestFile(t, dir, "full/keep.txt", "content")

	output, err := runCommand(t, "emptydirs", dir)
	if err != nil {
		t.Fatalf("emptydirs returned error: %v", err)
	}

	if !strings.Contains(output, "Found "+filepath.Join(dir, "empty")) {
		t.Errorf("empty directory not reported: %q", output)
	}
	if strings.Contains(output, "full") {
		t.Errorf("non-empty directory reported: %q", output)
	}
	if _, err := os.Stat(filepath.Join(dir, "empty")); err != nil {
		t.Error("find mode must not remove anything")
	}
}

func TestEmptydirsRemoveCascades(t *testing.T) {
	dir := testutil.TempDir(t, "dupescout-emptydirs")
	// outer only contains inner, which is empty; both should go.
	mkdirAll(t, filepath.Join(dir, "outer", "inner"))

	output, err := runCommand(t, "emptydirs", "--remove", "--yes", dir)
	if err != nil {
		t.Fatalf("emptydirs returned error: %v", err)
	}

	for _, name := range []string{"inner", "outer"} {
		if !strings.Contains(output, "Deleted") || !strings.Contains(output, name) {
			t.Errorf("expected %s to be deleted, output: %q", name, output)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "outer")); !os.IsNotExist(err) {
		t.Error("outer directory should have been removed")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Error("the root itself must never be removed")
	}

	resetEmptydirsFlags(t)
}

func TestEmptydirsRemoveDeclined(t *testing.T) {
	dir := testutil.TempDir(t, "dupescout-emptydirs")
	mkdirAll(t, filepath.Join(dir, "empty"))

	rootCmd.SetIn(strings.NewReader("n\n"))
	defer rootCmd.SetIn(nil)

	output, err := runCommand(t, "emptydirs", "--remove", dir)
	if err != nil {
		t.Fatalf("emptydirs returned error: %v", err)
	}
	if !strings.Contains(output, "Removal cancelled.") {
		t.Errorf("declined prompt should cancel, output: %q", output)
	}
	if _, err := os.Stat(filepath.Join(dir, "empty")); err != nil {
		t.Error("nothing may be removed after a declined prompt")
	}

	resetEmptydirsFlags(t)
}

func resetEmptydirsFlags(t *testing.T) {
	t.Helper()
	for _, name := range []string{"remove", "yes"} {
		if err := emptydirsCmd.Flags().Set(name, "false"); err != nil {
			t.Fatalf("failed to reset %s flag: %v", name, err)
		}
	}
}

func TestEmptydirsPattern(t *testing.T) {
	dir := testutil.TempDir(t, "dupescout-emptydirs")
	mkdirAll(t, filepath.Join(dir, "tmp-build"))
	mkdirAll(t, filepath.Join(dir, "cache"))

	output, err := runCommand(t, "emptydirs", "--pattern", "tmp*", dir)
	if err != nil {
		t.Fatalf("emptydirs returned error: %v", err)
	}

	if !strings.Contains(output, "tmp-build") {
		t.Errorf("matching directory not reported: %q", output)
	}
	if strings.Contains(output, "cache") {
		t.Errorf("non-matching directory reported: %q", output)
	}

	if err := emptydirsCmd.Flags().Set("pattern", "*"); err != nil {
		t.Fatalf("failed to reset pattern flag: %v", err)
	}
}

func TestEmptydirsRejectsFile(t *testing.T) {
	dir := testutil.TempDir(t, "dupescout-emptydirs")
	file := testutil.CreateTestFile(t, dir, "plain.txt", "content")

	if _, err := runCommand(t, "emptydirs", file); err == nil {
		t.Error("a plain file root should be rejected")
	}
}
