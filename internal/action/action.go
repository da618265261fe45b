// Package action applies the optional destructive phase to duplicate
// groups: deleting or moving every member except the canonical first one.
//
// Identity is re-verified immediately before each destructive operation; a
// file that changed since discovery is left alone and reported, and the
// rest of the run continues.
package action

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dupescout/dupescout/internal/constants"
	"github.com/dupescout/dupescout/internal/grouping"
	"github.com/dupescout/dupescout/internal/scanerr"
	"github.com/dupescout/dupescout/internal/walker"
)

// Options selects the action phase behavior.
type Options struct {
	Action  string // constants.ActionDelete or ActionMove
	DestDir string // move target, required for ActionMove
	DryRun  bool
}

// Outcome summarizes what the action phase did.
type Outcome struct {
	Deleted  int
	Moved    int
	Freed    int64
	Failures []*scanerr.IntegrityMismatch
}

// Apply processes every group. The canonical (first) member is always kept.
// On an integrity failure the remainder of that group is skipped and the
// next group is processed; the failures are collected in the outcome.
func Apply(groups []grouping.Group, opts Options, out io.Writer) (*Outcome, error) {
	if opts.Action == constants.ActionMove && !opts.DryRun {
		if err := os.MkdirAll(opts.DestDir, constants.StandardDirPerms); err != nil {
			return nil, fmt.Errorf("failed to create destination directory %s: %w", opts.DestDir, err)
		}
	}

	outcome := &Outcome{}
	for _, group := range groups {
		if err := applyGroup(&group, opts, outcome, out); err != nil {
			return outcome, err
		}
	}
	return outcome, nil
}

func applyGroup(group *grouping.Group, opts Options, outcome *Outcome, out io.Writer) error {
	for _, member := range group.Members[1:] {
		if opts.DryRun {
			switch opts.Action {
			case constants.ActionDelete:
				fmt.Fprintf(out, "would delete %s\n", member.Path)
			case constants.ActionMove:
				fmt.Fprintf(out, "would move %s -> %s\n", member.Path, opts.DestDir)
			}
			continue
		}

		if err := verifyIdentity(member); err != nil {
			mismatch := err.(*scanerr.IntegrityMismatch)
			outcome.Failures = append(outcome.Failures, mismatch)
			fmt.Fprintf(out, "aborting group: %v\n", mismatch)
			return nil
		}

		switch opts.Action {
		case constants.ActionDelete:
			if err := os.Remove(member.Path); err != nil {
				outcome.Failures = append(outcome.Failures, &scanerr.IntegrityMismatch{
					Path: member.Path, Reason: fmt.Sprintf("delete failed: %v", err),
				})
				return nil
			}
			outcome.Deleted++
			outcome.Freed += member.Size
			fmt.Fprintf(out, "deleted %s\n", member.Path)

		case constants.ActionMove:
			target, err := moveTarget(opts.DestDir, member.Path)
			if err != nil {
				return err
			}
			if err := os.Rename(member.Path, target); err != nil {
				outcome.Failures = append(outcome.Failures, &scanerr.IntegrityMismatch{
					Path: member.Path, Reason: fmt.Sprintf("move failed: %v", err),
				})
				return nil
			}
			outcome.Moved++
			outcome.Freed += member.Size
			fmt.Fprintf(out, "moved %s -> %s\n", member.Path, target)

		default:
			return scanerr.NewConfigError("unknown action: %s", opts.Action)
		}
	}
	return nil
}

// verifyIdentity re-stats the file and compares against the walk-time
// entry. Always returns *scanerr.IntegrityMismatch on failure.
func verifyIdentity(entry walker.FileEntry) error {
	info, err := os.Stat(entry.Path)
	if err != nil {
		return &scanerr.IntegrityMismatch{Path: entry.Path, Reason: fmt.Sprintf("file vanished: %v", err)}
	}
	if info.Size() != entry.Size {
		return &scanerr.IntegrityMismatch{
			Path:   entry.Path,
			Reason: fmt.Sprintf("size changed from %d to %d since discovery", entry.Size, info.Size()),
		}
	}
	if !info.ModTime().Equal(entry.ModTime) {
		return &scanerr.IntegrityMismatch{Path: entry.Path, Reason: "modified since discovery"}
	}
	return nil
}

// moveTarget picks a collision-free path under destDir for the file's base
// name, appending a numeric suffix when needed.
func moveTarget(destDir, path string) (string, error) {
	base := filepath.Base(path)
	target := filepath.Join(destDir, base)

	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]
	for n := 1; ; n++ {
		if _, err := os.Lstat(target); os.IsNotExist(err) {
			return target, nil
		} else if err != nil && !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to probe move target %s: %w", target, err)
		}
		target = filepath.Join(destDir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
	}
}
