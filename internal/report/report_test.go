package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dupescout/dupescout/internal/grouping"
	"github.com/dupescout/dupescout/internal/scanerr"
	"github.com/dupescout/dupescout/internal/walker"
)

func sampleGroups() []grouping.Group {
	return []grouping.Group{
		{Members: []walker.FileEntry{
			{Path: "/data/a.bin", Size: 100},
			{Path: "/data/copy/a.bin", Size: 100},
		}},
		{Members: []walker.FileEntry{
			{Path: "/pics/x.jpg", Size: 50},
			{Path: "/pics/y.jpg", Size: 50},
			{Path: "/pics/z.jpg", Size: 50},
		}},
	}
}

func TestPrintGroupsQuiet(t *testing.T) {
	var out bytes.Buffer
	PrintGroups(&out, sampleGroups(), true)

	want := "/data/a.bin\n/data/copy/a.bin\n\n/pics/x.jpg\n/pics/y.jpg\n/pics/z.jpg\n"
	if out.String() != want {
		t.Errorf("PrintGroups(quiet) = %q, want %q", out.String(), want)
	}
}

func TestPrintGroupsHeaders(t *testing.T) {
	var out bytes.Buffer
	PrintGroups(&out, sampleGroups(), false)

	text := out.String()
	if !strings.Contains(text, "group 1") || !strings.Contains(text, "group 2") {
		t.Errorf("PrintGroups() output missing group headers: %q", text)
	}
	if !strings.Contains(text, "/pics/z.jpg") {
		t.Errorf("PrintGroups() output missing member path: %q", text)
	}
	// Blocks stay blank-line separated even with headers on.
	if !strings.Contains(text, "\n\n") {
		t.Errorf("PrintGroups() blocks not blank-line separated: %q", text)
	}
}

func TestPrintSummary(t *testing.T) {
	stats := &scanerr.Stats{}
	stats.AddScanned()
	stats.AddScanned()
	stats.Record(&scanerr.AccessError{Path: "/locked"})

	var out bytes.Buffer
	PrintSummary(&out, sampleGroups(), stats)

	text := out.String()
	for _, want := range []string{
		"Duplicate groups",
		"Redundant copies",
		"Reclaimable space",
		"Skipped (access denied)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("PrintSummary() output missing %q: %q", want, text)
		}
	}
	if strings.Contains(text, "Skipped (read failed)") {
		t.Error("PrintSummary() should omit zero-count skip rows")
	}
}
