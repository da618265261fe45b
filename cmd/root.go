package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dupescout/dupescout/internal/constants"
	"github.com/dupescout/dupescout/internal/scanerr"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dupescout",
	Short: "dupescout - filesystem duplicate finder and friends",
	Long: `dupescout is a small family of single-purpose filesystem utilities built
around a duplicate-file finder.

The scan command finds duplicate files by exact content digest or by
perceptual image similarity. The remaining commands cover the adjacent
chores: hashing a directory, finding empty folders, comparing two trees,
and spotting all-zero files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and maps the error taxonomy onto exit
// codes: 2 for configuration errors, 1 for runs that skipped files.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var confErr *scanerr.ConfigError
		switch {
		case errors.As(err, &confErr):
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(constants.ExitConfigError)
		case errors.Is(err, errFilesSkipped):
			// The summary already explained what was skipped.
			os.Exit(constants.ExitFileErrors)
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// errFilesSkipped signals a completed run during which some paths could not
// be processed.
var errFilesSkipped = errors.New("some files were skipped")

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Disable progress bars and reduce output")
}
