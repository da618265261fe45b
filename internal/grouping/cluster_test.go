package grouping

import (
	"testing"

	"github.com/dupescout/dupescout/internal/fingerprint"
	"github.com/dupescout/dupescout/internal/walker"
)

func scored(path string, hash uint64) Scored {
	return Scored{
		Entry:       walker.FileEntry{Path: path, Size: 1},
		Fingerprint: fingerprint.Fingerprint{PHash: hash},
	}
}

func TestClusterByDistance(t *testing.T) {
	// Distances are hamming bit counts normalized by 64.
	tests := []struct {
		name      string
		items     []Scored
		threshold float64
		wantSizes []int
	}{
		{
			name: "identical hashes group",
			items: []Scored{
				scored("/a", 0xff00),
				scored("/b", 0xff00),
			},
			threshold: 0,
			wantSizes: []int{2},
		},
		{
			name: "within threshold groups",
			items: []Scored{
				scored("/a", 0b0000),
				scored("/b", 0b0011), // 2 bits apart, 2/64 = 0.031
			},
			threshold: 0.1,
			wantSizes: []int{2},
		},
		{
			name: "beyond threshold stays apart",
			items: []Scored{
				scored("/a", 0),
				scored("/b", 0xffffffffffffffff), // 64 bits apart
			},
			threshold: 0.1,
			wantSizes: nil,
		},
		{
			name: "transitive chain merges",
			items: []Scored{
				scored("/a", 0b00000000),
				scored("/b", 0b00001111), // 4 bits from a
				scored("/c", 0b11111111), // 4 bits from b, 8 from a
			},
			threshold: 0.07, // 4/64 = 0.0625 passes, 8/64 = 0.125 does not
			wantSizes: []int{3},
		},
		{
			name: "two separate clusters",
			items: []Scored{
				scored("/a", 0),
				scored("/b", 1),
				scored("/c", 0xffffffffffffffff),
				scored("/d", 0xfffffffffffffffe),
			},
			threshold: 0.05,
			wantSizes: []int{2, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := ClusterByDistance(tt.items, tt.threshold)
			if len(groups) != len(tt.wantSizes) {
				t.Fatalf("ClusterByDistance() = %d groups, want %d", len(groups), len(tt.wantSizes))
			}
			for i, want := range tt.wantSizes {
				if len(groups[i].Members) != want {
					t.Errorf("group %d size = %d, want %d", i, len(groups[i].Members), want)
				}
			}
		})
	}
}

func TestClusterCanonicalIsFirstSeen(t *testing.T) {
	items := []Scored{
		scored("/second-cluster", 0xffffffffffffffff),
		scored("/first", 0),
		scored("/close-to-first", 1),
		scored("/second-cluster-twin", 0xfffffffffffffffe),
	}

	groups := ClusterByDistance(items, 0.05)
	if len(groups) != 2 {
		t.Fatalf("ClusterByDistance() = %d groups, want 2", len(groups))
	}
	if groups[0].Members[0].Path != "/second-cluster" {
		t.Errorf("first group canonical = %s, want /second-cluster", groups[0].Members[0].Path)
	}
	if groups[1].Members[0].Path != "/first" {
		t.Errorf("second group canonical = %s, want /first", groups[1].Members[0].Path)
	}
}
