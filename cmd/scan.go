package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/dupescout/dupescout/internal/action"
	"github.com/dupescout/dupescout/internal/config"
	"github.com/dupescout/dupescout/internal/constants"
	"github.com/dupescout/dupescout/internal/pipeline"
	"github.com/dupescout/dupescout/internal/progress"
	"github.com/dupescout/dupescout/internal/report"
	"github.com/dupescout/dupescout/internal/scanerr"
	"github.com/dupescout/dupescout/util"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [roots...]",
	Short: "Find duplicate files under one or more directories",
	Long: `Find duplicate files under one or more root directories.

Two strategies are available:
- exact: files are duplicates iff their content digests are bit-identical.
  Only files sharing a size are hashed at all, so unique sizes cost nothing.
- perceptual: images are duplicates when their perceptual hashes lie within
  --threshold of each other, which tolerates re-encodes and small edits.

By default groups are only reported. Destructive actions keep the first
file found in each group, re-verify every other member just before touching
it, and default to --dry-run=true.

Examples:
  dupescout scan ~/photos
  dupescout scan --strategy perceptual --threshold 0.08 ~/photos ~/backup
  dupescout scan --algorithm blake3 --min-size 1MB /srv/media
  dupescout scan --action delete --dry-run=false --yes /tmp/cache
  dupescout scan --action move --dest /var/quarantine --dry-run=false /data
`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildScanConfig(cmd, args)
		if err != nil {
			return err
		}

		pm := progress.NewManager(progress.Options{Quiet: cfg.Quiet, Verbose: cfg.Verbose})
		ctx := pm.SetupCancellation(context.Background())
		defer pm.Cleanup()

		result, err := pipeline.Run(ctx, cfg, pm)
		if err != nil {
			return err
		}

		if len(result.Groups) == 0 {
			pm.PrintInfo("No duplicates found.\n")
		} else {
			report.PrintGroups(os.Stdout, result.Groups, cfg.Quiet)
		}

		if cfg.Action != constants.ActionReport && len(result.Groups) > 0 {
			if err := runActionPhase(cfg, result); err != nil {
				return err
			}
		}

		if !cfg.Quiet {
			report.PrintSummary(os.Stdout, result.Groups, result.Stats)
		}

		if result.Stats.HadErrors() {
			return errFilesSkipped
		}
		return nil
	},
}

func runActionPhase(cfg *config.ScanConfig, result *pipeline.Result) error {
	if !cfg.DryRun && !cfg.AssumeYes {
		label := fmt.Sprintf("Apply %s to %d duplicate groups", cfg.Action, len(result.Groups))
		confirmPrompt := promptui.Prompt{
			Label:     label,
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			if err == promptui.ErrAbort {
				fmt.Println("Action cancelled.")
				return nil
			}
			return fmt.Errorf("confirmation failed: %v", err)
		}
	}

	outcome, err := action.Apply(result.Groups, action.Options{
		Action:  cfg.Action,
		DestDir: cfg.DestDir,
		DryRun:  cfg.DryRun,
	}, os.Stdout)
	if err != nil {
		return err
	}

	for _, failure := range outcome.Failures {
		result.Stats.Record(failure)
	}
	if outcome.Deleted > 0 || outcome.Moved > 0 {
		fmt.Printf("✓ Freed %s (%d deleted, %d moved)\n",
			util.HumanReadableSize(outcome.Freed), outcome.Deleted, outcome.Moved)
	}
	return nil
}

// buildScanConfig merges builtin defaults, the optional YAML defaults file
// and the command line, in that order, into one immutable config.
func buildScanConfig(cmd *cobra.Command, roots []string) (*config.ScanConfig, error) {
	flags := cmd.Flags()

	cfg := &config.ScanConfig{
		Roots:     roots,
		Strategy:  constants.StrategyExact,
		Algorithm: constants.DefaultAlgorithm,
		Threshold: constants.DefaultThreshold,
		Action:    constants.ActionReport,
		DryRun:    true,
		Workers:   config.DefaultWorkers(),
		SortKey:   constants.DefaultSortKey,
	}

	if path, _ := flags.GetString("config"); path != "" {
		defaults, err := config.LoadDefaults(path)
		if err != nil {
			return nil, scanerr.NewConfigError("%v", err)
		}
		if err := applyDefaults(cfg, defaults); err != nil {
			return nil, err
		}
	}

	if flags.Changed("strategy") {
		cfg.Strategy, _ = flags.GetString("strategy")
	}
	if flags.Changed("algorithm") {
		cfg.Algorithm, _ = flags.GetString("algorithm")
	}
	if flags.Changed("threshold") {
		cfg.Threshold, _ = flags.GetFloat64("threshold")
	}
	if flags.Changed("min-size") {
		raw, _ := flags.GetString("min-size")
		size, err := util.ParseSize(raw)
		if err != nil {
			return nil, scanerr.NewConfigError("invalid --min-size: %v", err)
		}
		cfg.MinSize = size
	}
	if flags.Changed("max-size") {
		raw, _ := flags.GetString("max-size")
		size, err := util.ParseSize(raw)
		if err != nil {
			return nil, scanerr.NewConfigError("invalid --max-size: %v", err)
		}
		cfg.MaxSize = size
	}
	if flags.Changed("extensions") {
		exts, _ := flags.GetStringSlice("extensions")
		cfg.Extensions = config.NormalizeExtensions(exts)
	}
	if flags.Changed("exclude") {
		cfg.Exclude, _ = flags.GetStringSlice("exclude")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("sort") {
		cfg.SortKey, _ = flags.GetString("sort")
	}

	cfg.MaxDepth, _ = flags.GetInt("depth")
	cfg.FollowSymlinks, _ = flags.GetBool("follow-symlinks")
	cfg.Action, _ = flags.GetString("action")
	cfg.DestDir, _ = flags.GetString("dest")
	cfg.DryRun, _ = flags.GetBool("dry-run")
	cfg.AssumeYes, _ = flags.GetBool("yes")
	cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
	cfg.Quiet, _ = cmd.Flags().GetBool("quiet")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *config.ScanConfig, defaults *config.Defaults) error {
	if defaults.Strategy != "" {
		cfg.Strategy = defaults.Strategy
	}
	if defaults.Algorithm != "" {
		cfg.Algorithm = defaults.Algorithm
	}
	if defaults.Threshold != nil {
		cfg.Threshold = *defaults.Threshold
	}
	if defaults.MinSize != "" {
		size, err := util.ParseSize(defaults.MinSize)
		if err != nil {
			return scanerr.NewConfigError("invalid min_size in defaults file: %v", err)
		}
		cfg.MinSize = size
	}
	if defaults.MaxSize != "" {
		size, err := util.ParseSize(defaults.MaxSize)
		if err != nil {
			return scanerr.NewConfigError("invalid max_size in defaults file: %v", err)
		}
		cfg.MaxSize = size
	}
	if len(defaults.Extensions) > 0 {
		cfg.Extensions = config.NormalizeExtensions(defaults.Extensions)
	}
	if len(defaults.Exclude) > 0 {
		cfg.Exclude = defaults.Exclude
	}
	if defaults.Workers != nil {
		cfg.Workers = *defaults.Workers
	}
	if defaults.SortKey != "" {
		cfg.SortKey = defaults.SortKey
	}
	return nil
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().String("strategy", constants.StrategyExact, "Fingerprint strategy: exact or perceptual")
	scanCmd.Flags().String("algorithm", constants.DefaultAlgorithm, "Exact digest algorithm: xxhash, sha1, sha256, sha512 or blake3")
	scanCmd.Flags().Float64("threshold", constants.DefaultThreshold, "Perceptual similarity threshold in [0,1] (normalized hamming distance)")
	scanCmd.Flags().String("min-size", "", "Skip files smaller than this (e.g. 4KB)")
	scanCmd.Flags().String("max-size", "", "Skip files larger than this")
	scanCmd.Flags().StringSlice("extensions", nil, "Only consider these file extensions")
	scanCmd.Flags().StringSlice("exclude", nil, "Glob patterns of names to skip")
	scanCmd.Flags().Int("depth", 0, "Maximum directory levels to walk, counting the root itself (1 = root only, 0 = unlimited)")
	scanCmd.Flags().Bool("follow-symlinks", false, "Follow symbolic links (cycles are detected)")
	scanCmd.Flags().String("action", constants.ActionReport, "What to do with duplicates: report, delete or move")
	scanCmd.Flags().String("dest", "", "Destination directory for --action move")
	scanCmd.Flags().Bool("dry-run", true, "Show what a destructive action would do without doing it")
	scanCmd.Flags().Bool("yes", false, "Skip the confirmation prompt for destructive actions")
	scanCmd.Flags().Int("workers", config.DefaultWorkers(), "Number of concurrent fingerprint workers")
	scanCmd.Flags().String("sort", constants.DefaultSortKey, "Group sort key: size, count or path")
	scanCmd.Flags().String("config", "", "YAML file with default scan settings")
}
