// Package grouping accumulates fingerprinted files into duplicate groups.
//
// The Grouper is single-writer: the pipeline funnels all results through one
// consumer goroutine, so no internal locking is needed.
package grouping

import (
	"sort"

	"github.com/dupescout/dupescout/internal/constants"
	"github.com/dupescout/dupescout/internal/fingerprint"
	"github.com/dupescout/dupescout/internal/walker"
)

// Group is a set of files considered equivalent under the active strategy.
// Members keep insertion order; the first member is the canonical copy that
// destructive actions preserve.
type Group struct {
	Fingerprint fingerprint.Fingerprint
	Members     []walker.FileEntry
}

// TotalSize is the combined size of all members.
func (g *Group) TotalSize() int64 {
	var total int64
	for _, m := range g.Members {
		total += m.Size
	}
	return total
}

// ReclaimableSize is the space freed by keeping only the canonical copy.
func (g *Group) ReclaimableSize() int64 {
	var total int64
	for _, m := range g.Members[1:] {
		total += m.Size
	}
	return total
}

// sizeKey identifies an exact group. The size is part of the key, so two
// files can only ever share a group when both size and digest match; a
// cross-size digest collision can never merge them.
type sizeKey struct {
	size   int64
	digest string
}

// Grouper maps exact fingerprints to their files, preserving both the order
// groups first appeared and the order files joined each group.
type Grouper struct {
	byKey  map[sizeKey]int
	groups []Group
}

// NewGrouper creates an empty exact-strategy grouper.
func NewGrouper() *Grouper {
	return &Grouper{byKey: make(map[sizeKey]int)}
}

// Add records one fingerprinted file.
func (g *Grouper) Add(entry walker.FileEntry, fp fingerprint.Fingerprint) {
	key := sizeKey{size: entry.Size, digest: fp.Key}
	idx, ok := g.byKey[key]
	if !ok {
		idx = len(g.groups)
		g.byKey[key] = idx
		g.groups = append(g.groups, Group{Fingerprint: fp})
	}
	g.groups[idx].Members = append(g.groups[idx].Members, entry)
}

// Groups returns every group with at least two members, in first-seen order.
func (g *Grouper) Groups() []Group {
	var out []Group
	for _, group := range g.groups {
		if len(group.Members) >= 2 {
			out = append(out, group)
		}
	}
	return out
}

// SortGroups orders groups for reporting. Reporting order is a final sort,
// never completion order, so concurrent extraction stays deterministic.
func SortGroups(groups []Group, key string) {
	less := func(i, j int) bool {
		a, b := &groups[i], &groups[j]
		switch key {
		case constants.SortByCount:
			if len(a.Members) != len(b.Members) {
				return len(a.Members) > len(b.Members)
			}
		case constants.SortByPath:
			return a.Members[0].Path < b.Members[0].Path
		default: // constants.SortBySize
			if a.ReclaimableSize() != b.ReclaimableSize() {
				return a.ReclaimableSize() > b.ReclaimableSize()
			}
		}
		return a.Members[0].Path < b.Members[0].Path
	}
	sort.SliceStable(groups, less)
}
