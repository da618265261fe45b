// Package pipeline drives the three scan stages: walk, fingerprint, group.
//
// The extractor stage runs as a bounded worker pool; at most cfg.Workers
// files are open concurrently. All results flow to a single consumer, which
// is the only writer of the group mapping. Reporting order comes from a
// final sort, never from completion order.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/dupescout/dupescout/internal/config"
	"github.com/dupescout/dupescout/internal/constants"
	"github.com/dupescout/dupescout/internal/fingerprint"
	"github.com/dupescout/dupescout/internal/grouping"
	"github.com/dupescout/dupescout/internal/progress"
	"github.com/dupescout/dupescout/internal/scanerr"
	"github.com/dupescout/dupescout/internal/walker"
)

// Result carries the duplicate groups and the per-file error accounting of
// one run.
type Result struct {
	Groups []grouping.Group
	Stats  *scanerr.Stats

	// Partial is set when the run was interrupted; the groups reflect only
	// the files processed before cancellation.
	Partial bool
}

// Run executes a full scan under cfg. Per-file errors are recorded in the
// result stats and never abort the run; cancellation yields a partial
// result rather than an error.
func Run(ctx context.Context, cfg *config.ScanConfig, pm *progress.Manager) (*Result, error) {
	stats := &scanerr.Stats{}
	strategy := fingerprint.Strategy{
		Kind:      cfg.Strategy,
		Algorithm: cfg.Algorithm,
		Threshold: cfg.Threshold,
	}

	entries, walkErr := collectEntries(ctx, cfg, pm, stats)
	if walkErr != nil && !errors.Is(walkErr, context.Canceled) {
		return nil, walkErr
	}

	candidates := selectCandidates(entries, strategy)
	pm.PrintVerbose("%d files walked, %d fingerprint candidates", len(entries), len(candidates))

	groups, hashErr := fingerprintAndGroup(ctx, cfg, strategy, candidates, pm, stats)
	if hashErr != nil && !errors.Is(hashErr, context.Canceled) {
		return nil, hashErr
	}
	interrupted := walkErr != nil || hashErr != nil

	grouping.SortGroups(groups, cfg.SortKey)

	return &Result{Groups: groups, Stats: stats, Partial: interrupted}, nil
}

func collectEntries(ctx context.Context, cfg *config.ScanConfig, pm *progress.Manager, stats *scanerr.Stats) ([]walker.FileEntry, error) {
	opts := walker.Options{
		MinSize:        cfg.MinSize,
		MaxSize:        cfg.MaxSize,
		Extensions:     cfg.Extensions,
		Exclude:        cfg.Exclude,
		MaxDepth:       cfg.MaxDepth,
		FollowSymlinks: cfg.FollowSymlinks,
	}
	// The perceptual strategy only makes sense on images; default the
	// filter when the user did not narrow it themselves.
	if cfg.Strategy == constants.StrategyPerceptual && len(opts.Extensions) == 0 {
		opts.Extensions = fingerprint.ImageExtensions
	}

	var entries []walker.FileEntry
	pm.StartWalk("Collecting files")
	err := walker.Walk(ctx, cfg.Roots, opts,
		func(entry walker.FileEntry) {
			entries = append(entries, entry)
			stats.AddScanned()
			pm.WalkFound()
		},
		func(err error) {
			stats.Record(err)
			pm.PrintVerbose("Skipped: %v", err)
		},
	)
	pm.FinishWalk()

	if err != nil && !errors.Is(err, context.Canceled) {
		return entries, fmt.Errorf("walk aborted: %w", err)
	}
	return entries, err
}

// selectCandidates applies the size short-circuit: under the exact strategy
// two files of different sizes can never be duplicates, so only sizes seen
// more than once are worth hashing. Perceptual similarity has no such
// invariant (a resized image keeps its phash but not its byte size).
func selectCandidates(entries []walker.FileEntry, strategy fingerprint.Strategy) []walker.FileEntry {
	if strategy.Kind != constants.StrategyExact {
		return entries
	}

	bySize := make(map[int64]int)
	for _, entry := range entries {
		bySize[entry.Size]++
	}

	var candidates []walker.FileEntry
	for _, entry := range entries {
		if bySize[entry.Size] > 1 {
			candidates = append(candidates, entry)
		}
	}
	return candidates
}

type scoredResult struct {
	entry walker.FileEntry
	fp    fingerprint.Fingerprint
}

func fingerprintAndGroup(ctx context.Context, cfg *config.ScanConfig, strategy fingerprint.Strategy, candidates []walker.FileEntry, pm *progress.Manager, stats *scanerr.Stats) ([]grouping.Group, error) {
	pm.InitHashProgress(int64(len(candidates)), "Fingerprinting")
	defer pm.FinishHashProgress()

	feed := make(chan walker.FileEntry)
	results := make(chan scoredResult)

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer close(feed)
		for _, entry := range candidates {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case feed <- entry:
			}
		}
		return nil
	})

	for i := 0; i < cfg.Workers; i++ {
		group.Go(func() error {
			for entry := range feed {
				fp, err := fingerprint.Compute(entry, strategy)
				pm.UpdateHashProgress()
				if err != nil {
					stats.Record(err)
					pm.PrintVerbose("Skipped: %v", err)
					continue
				}
				stats.AddFingerprint()
				select {
				case <-gctx.Done():
					return gctx.Err()
				case results <- scoredResult{entry: entry, fp: fp}:
				}
			}
			return nil
		})
	}

	// Single consumer owns the mapping; ordered output comes from the sort
	// at the end, not from completion order.
	grouper := grouping.NewGrouper()
	var scored []grouping.Scored
	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		for result := range results {
			if strategy.Kind == constants.StrategyPerceptual {
				scored = append(scored, grouping.Scored{Entry: result.entry, Fingerprint: result.fp})
			} else {
				grouper.Add(result.entry, result.fp)
			}
		}
	}()

	waitErr := group.Wait()
	close(results)
	<-consumerDone

	// Completion order is racy across workers; rank results back into walk
	// order so "first seen" always means first walked, run after run.
	walkOrder := make(map[string]int, len(candidates))
	for i, entry := range candidates {
		walkOrder[entry.Path] = i
	}

	var groups []grouping.Group
	if strategy.Kind == constants.StrategyPerceptual {
		sort.Slice(scored, func(i, j int) bool {
			return walkOrder[scored[i].Entry.Path] < walkOrder[scored[j].Entry.Path]
		})
		groups = grouping.ClusterByDistance(scored, strategy.Threshold)
	} else {
		groups = grouper.Groups()
		for g := range groups {
			members := groups[g].Members
			sort.Slice(members, func(i, j int) bool {
				return walkOrder[members[i].Path] < walkOrder[members[j].Path]
			})
		}
	}

	return groups, waitErr
}
