package grouping

import (
	"github.com/dupescout/dupescout/internal/fingerprint"
	"github.com/dupescout/dupescout/internal/walker"
)

// Scored is one perceptually fingerprinted file awaiting clustering.
type Scored struct {
	Entry       walker.FileEntry
	Fingerprint fingerprint.Fingerprint
}

// ClusterByDistance groups files whose perceptual fingerprints lie within
// threshold of each other. Grouping is transitive (union-find): A~B and B~C
// puts all three in one group even when A and C alone exceed the threshold.
// Members stay in insertion order, so the earliest-seen file is canonical.
func ClusterByDistance(items []Scored, threshold float64) []Group {
	parent := make([]int, len(items))
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			// Root at the lower index so canonical membership follows
			// discovery order.
			if ra < rb {
				parent[rb] = ra
			} else {
				parent[ra] = rb
			}
		}
	}

	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if fingerprint.Distance(items[i].Fingerprint, items[j].Fingerprint) <= threshold {
				union(i, j)
			}
		}
	}

	clusters := make(map[int][]int)
	var roots []int
	for i := range items {
		root := find(i)
		if _, seen := clusters[root]; !seen {
			roots = append(roots, root)
		}
		clusters[root] = append(clusters[root], i)
	}

	var groups []Group
	for _, root := range roots {
		indices := clusters[root]
		if len(indices) < 2 {
			continue
		}
		group := Group{Fingerprint: items[indices[0]].Fingerprint}
		for _, idx := range indices {
			group.Members = append(group.Members, items[idx].Entry)
		}
		groups = append(groups, group)
	}
	return groups
}
