package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dupescout/dupescout/internal/constants"
	"github.com/dupescout/dupescout/internal/fingerprint"
	"github.com/dupescout/dupescout/internal/walker"
)

// equaldirsCmd represents the equaldirs command
var equaldirsCmd = &cobra.Command{
	Use:   "equaldirs [dir1] [dir2]",
	Short: "Check whether two directories contain the same files",
	Long: `Check whether two directory trees are equal: the same relative paths
with byte-identical content.

The first difference found is reported and the command exits non-zero.
Sizes are compared before content, so trees that differ in an obvious way
fail fast without hashing.

Example:
  dupescout equaldirs ./backup ./restore
`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		left := filepath.Clean(args[0])
		right := filepath.Clean(args[1])

		leftFiles, err := indexTree(left)
		if err != nil {
			return err
		}
		rightFiles, err := indexTree(right)
		if err != nil {
			return err
		}

		var relPaths []string
		for rel := range leftFiles {
			relPaths = append(relPaths, rel)
		}
		sort.Strings(relPaths)

		for _, rel := range relPaths {
			leftEntry := leftFiles[rel]
			rightEntry, ok := rightFiles[rel]
			if !ok {
				return fmt.Errorf("missing from %s: %s", right, rel)
			}
			if leftEntry.Size != rightEntry.Size {
				return fmt.Errorf("size differs for %s: %d vs %d", rel, leftEntry.Size, rightEntry.Size)
			}
		}
		for rel := range rightFiles {
			if _, ok := leftFiles[rel]; !ok {
				return fmt.Errorf("missing from %s: %s", left, rel)
			}
		}

		// Same shape and sizes; now compare content.
		for _, rel := range relPaths {
			leftFp, err := fingerprint.ExactFile(leftFiles[rel].Path, constants.DefaultAlgorithm)
			if err != nil {
				return err
			}
			rightFp, err := fingerprint.ExactFile(rightFiles[rel].Path, constants.DefaultAlgorithm)
			if err != nil {
				return err
			}
			if leftFp.Key != rightFp.Key {
				return fmt.Errorf("content differs for %s", rel)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), "The directories are equal")
		return nil
	},
}

// indexTree maps relative paths to their entries for one root.
func indexTree(root string) (map[string]walker.FileEntry, error) {
	files := make(map[string]walker.FileEntry)
	var walkErrs []error
	err := walker.Walk(context.Background(), []string{root}, walker.Options{},
		func(entry walker.FileEntry) {
			rel, err := filepath.Rel(root, entry.Path)
			if err != nil {
				rel = entry.Path
			}
			files[rel] = entry
		},
		func(err error) { walkErrs = append(walkErrs, err) },
	)
	if err != nil {
		return nil, err
	}
	if len(walkErrs) > 0 {
		return nil, fmt.Errorf("cannot index %s: %v", root, walkErrs[0])
	}
	return files, nil
}

func init() {
	rootCmd.AddCommand(equaldirsCmd)
}
