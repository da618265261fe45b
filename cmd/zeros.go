package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dupescout/dupescout/internal/constants"
	"github.com/dupescout/dupescout/internal/walker"
)

// zerosCmd represents the zeros command
var zerosCmd = &cobra.Command{
	Use:   "zeros [root]",
	Short: "Find non-empty files that contain only zero bytes",
	Long: `Find files whose content is nothing but zero bytes.

Sparse or corrupted transfers often leave such files behind at their full
nominal size. Zero-length files are not reported; they carry no content to
judge. Files are read in bounded chunks, so size does not matter.

Example:
  dupescout zeros /mnt/restore
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var skipped int
		err := walker.Walk(context.Background(), args, walker.Options{MinSize: 1},
			func(entry walker.FileEntry) {
				allZero, err := isAllZero(entry.Path)
				if err != nil {
					skipped++
					fmt.Fprintf(os.Stderr, "Skipped: %s: %v\n", entry.Path, err)
					return
				}
				if allZero {
					fmt.Fprintln(cmd.OutOrStdout(), entry.Path)
				}
			},
			func(err error) {
				skipped++
				fmt.Fprintf(os.Stderr, "Skipped: %v\n", err)
			},
		)
		if err != nil {
			return err
		}

		if skipped > 0 {
			return errFilesSkipped
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(zerosCmd)
}

// isAllZero reports whether every byte of the file is 0x00.
func isAllZero(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, constants.ReadChunkSize)
	for {
		bytesRead, err := file.Read(buffer)
		for _, b := range buffer[:bytesRead] {
			if b != 0 {
				return false, nil
			}
		}
		if err == io.EOF {
			return true, nil
		}
		if err != nil {
			return false, err
		}
	}
}
