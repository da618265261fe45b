package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dupescout/dupescout/internal/constants"
	"github.com/dupescout/dupescout/internal/fingerprint"
	"github.com/dupescout/dupescout/internal/scanerr"
	"github.com/dupescout/dupescout/internal/walker"
)

// hashdirCmd represents the hashdir command
var hashdirCmd = &cobra.Command{
	Use:   "hashdir [directory]",
	Short: "Print the digest of every file in a directory",
	Long: `Calculate and print the digest of every file under a directory.

Output is one "<digest>  <relative path>" line per file, sorted by path,
so two runs over identical trees produce identical output and can be
compared with standard diff tools.

Example:
  dupescout hashdir --algorithm sha256 ./release
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := filepath.Clean(args[0])
		algorithm, _ := cmd.Flags().GetString("algorithm")

		if _, err := fingerprint.NewHasher(algorithm); err != nil {
			return scanerr.NewConfigError("invalid --algorithm: %v", err)
		}

		var entries []walker.FileEntry
		var skipped int
		err := walker.Walk(context.Background(), []string{root}, walker.Options{},
			func(entry walker.FileEntry) { entries = append(entries, entry) },
			func(err error) {
				skipped++
				fmt.Fprintf(os.Stderr, "Skipped: %v\n", err)
			},
		)
		if err != nil {
			return err
		}

		sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

		for _, entry := range entries {
			fp, err := fingerprint.ExactFile(entry.Path, algorithm)
			if err != nil {
				skipped++
				fmt.Fprintf(os.Stderr, "Skipped: %v\n", err)
				continue
			}
			rel, err := filepath.Rel(root, entry.Path)
			if err != nil {
				rel = entry.Path
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", fp.Key, rel)
		}

		if skipped > 0 {
			return errFilesSkipped
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashdirCmd)

	hashdirCmd.Flags().String("algorithm", constants.DefaultAlgorithm, "Digest algorithm: xxhash, sha1, sha256, sha512 or blake3")
}
