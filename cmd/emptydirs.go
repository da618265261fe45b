package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dupescout/dupescout/util"
)

// emptydirsCmd represents the emptydirs command
var emptydirsCmd = &cobra.Command{
	Use:   "emptydirs [directory]",
	Short: "Find or remove empty directories",
	Long: `Find directories that contain no files and no subdirectories.

With --remove the matching directories are deleted. Removal works
bottom-up, so a directory that only contained empty directories is itself
removed in the same run.

Examples:
  dupescout emptydirs ~/downloads
  dupescout emptydirs --pattern 'tmp*' --remove ~/downloads
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := filepath.Clean(args[0])
		pattern, _ := cmd.Flags().GetString("pattern")
		remove, _ := cmd.Flags().GetBool("remove")
		assumeYes, _ := cmd.Flags().GetBool("yes")

		info, err := os.Stat(root)
		if err != nil {
			return fmt.Errorf("cannot read %s: %v", root, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%s is not a directory", root)
		}

		if remove && !assumeYes {
			ok, err := util.ConfirmAction(
				fmt.Sprintf("Remove empty directories under %s", root),
				cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("confirmation failed: %v", err)
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Removal cancelled.")
				return nil
			}
		}

		var skipped int
		if _, err := sweepEmptyDirs(cmd, root, pattern, remove, &skipped, true); err != nil {
			return err
		}

		if skipped > 0 {
			return errFilesSkipped
		}
		return nil
	},
}

// sweepEmptyDirs reports whether dir is (or became) empty. Children are
// visited first so emptiness propagates upward. The root itself is never
// removed or reported.
func sweepEmptyDirs(cmd *cobra.Command, dir, pattern string, remove bool, skipped *int, isRoot bool) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		*skipped++
		fmt.Fprintf(os.Stderr, "Skipped: %s: %v\n", dir, err)
		return false, nil
	}

	remaining := len(entries)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		childEmpty, err := sweepEmptyDirs(cmd, filepath.Join(dir, entry.Name()), pattern, remove, skipped, false)
		if err != nil {
			return false, err
		}
		if childEmpty && remove {
			remaining--
		}
	}

	if isRoot || remaining > 0 {
		return false, nil
	}

	if ok, err := filepath.Match(pattern, filepath.Base(dir)); err != nil || !ok {
		return false, nil
	}

	if remove {
		if err := os.Remove(dir); err != nil {
			*skipped++
			fmt.Fprintf(os.Stderr, "Removing %s failed: %v\n", dir, err)
			return false, nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", dir)
		return true, nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Found %s\n", dir)
	return true, nil
}

func init() {
	rootCmd.AddCommand(emptydirsCmd)

	emptydirsCmd.Flags().String("pattern", "*", "Only match directory names against this glob")
	emptydirsCmd.Flags().Bool("remove", false, "Remove matching empty directories")
	emptydirsCmd.Flags().Bool("yes", false, "Skip the confirmation prompt for --remove")
}
