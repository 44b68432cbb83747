package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sgothel/classdiff/internal/config"
	"github.com/sgothel/classdiff/internal/delta"
	"github.com/sgothel/classdiff/internal/obslog"
	"github.com/sgothel/classdiff/internal/report"
)

var (
	diffCriteriaFlag       string
	diffIncludePrivateFlag bool
	diffOldLabelFlag       string
	diffNewLabelFlag       string
	diffConfigFlag         string
	diffLogFileFlag        string
	diffVerboseFlag        bool
)

var diffCmd = &cobra.Command{
	Use:   "diff <old-dir> <new-dir>",
	Short: "Diff two class-dump snapshots and print the resulting differences",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiffCmd,
}

func init() {
	diffCmd.Flags().StringVar(&diffCriteriaFlag, "criteria", "", "public, public-protected, or simple (default from config, else public)")
	diffCmd.Flags().BoolVar(&diffIncludePrivateFlag, "include-private", false, "include private members (criteria=simple only)")
	diffCmd.Flags().StringVar(&diffOldLabelFlag, "old-label", "", "label for the old snapshot in output")
	diffCmd.Flags().StringVar(&diffNewLabelFlag, "new-label", "", "label for the new snapshot in output")
	diffCmd.Flags().StringVar(&diffConfigFlag, "config", "", "path to a classdiff YAML config file")
	diffCmd.Flags().StringVar(&diffLogFileFlag, "log-file", "", "also write structured logs to this file")
	diffCmd.Flags().BoolVarP(&diffVerboseFlag, "verbose", "v", false, "render each changed class's full contract")
}

func runDiffCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(diffConfigFlag)
	if err != nil {
		return err
	}
	applyOverrides(&cfg)

	logger, cleanup, err := obslog.Setup(diffLogFileFlag, slog.LevelInfo)
	if err != nil {
		return err
	}
	defer cleanup()

	criteria, err := buildCriteria(cfg.Criteria, cfg.IncludePrivate)
	if err != nil {
		return err
	}

	result, err := runDiff(args[0], args[1], criteria, cfg.OldLabel, cfg.NewLabel, false, logger)
	if err != nil {
		return err
	}

	printDelta(cmd, result, diffVerboseFlag)
	return nil
}

func applyOverrides(cfg *config.Config) {
	if diffCriteriaFlag != "" {
		cfg.Criteria = diffCriteriaFlag
	}
	if diffIncludePrivateFlag {
		cfg.IncludePrivate = true
	}
	if diffOldLabelFlag != "" {
		cfg.OldLabel = diffOldLabelFlag
	}
	if diffNewLabelFlag != "" {
		cfg.NewLabel = diffNewLabelFlag
	}
}

func printDelta(cmd *cobra.Command, result *diffResult, verbose bool) {
	diffs := result.delta.Differences()
	out := cmd.OutOrStdout()

	describedClasses := make(map[string]struct{})
	for _, diff := range diffs {
		fmt.Fprintf(out, "%s %s %s\n", diff.Kind, diff.ClassID, diffName(diff))
		if !verbose {
			continue
		}
		printThrowsOrInterfaceDiff(out, result, diff)
		if _, done := describedClasses[diff.ClassID]; done {
			continue
		}
		describedClasses[diff.ClassID] = struct{}{}
		if c, ok := result.newClasses[diff.ClassID]; ok {
			fmt.Fprint(out, report.DescribeClass(c))
		} else if c, ok := result.oldClasses[diff.ClassID]; ok {
			fmt.Fprint(out, report.DescribeClass(c))
		}
	}
	fmt.Fprintf(out, "\n%d difference(s), category: %s\n", len(diffs), result.delta.Category())
}

// printThrowsOrInterfaceDiff renders the unified throws-clause diff for a
// changed method, or the unified interface-set diff for a changed class,
// when the --verbose flag is set. difflib renders an empty string for two
// identical inputs, so printing is naturally skipped when that part of the
// entity didn't actually change.
func printThrowsOrInterfaceDiff(out io.Writer, result *diffResult, diff delta.Difference) {
	switch {
	case diff.New.Kind == "method" && (diff.Kind == delta.KindChange || diff.Kind == delta.KindCompatChange):
		oldC, newC := result.oldClasses[diff.ClassID], result.newClasses[diff.ClassID]
		if oldC == nil || newC == nil {
			return
		}
		oldM, newM := oldC.MethodMap[diff.Old.Name], newC.MethodMap[diff.New.Name]
		if oldM == nil || newM == nil {
			return
		}
		text, err := report.ThrowsClauseDiff(diff.ClassID+"#"+diff.New.Name, oldM, newM)
		if err == nil && text != "" {
			fmt.Fprint(out, text)
		}
	case diff.New.Kind == "class" && diff.Kind == delta.KindChange:
		oldC, newC := result.oldClasses[diff.ClassID], result.newClasses[diff.ClassID]
		if oldC == nil || newC == nil {
			return
		}
		text, err := report.InterfaceSetDiff(diff.ClassID, oldC, newC)
		if err == nil && text != "" {
			fmt.Fprint(out, text)
		}
	}
}

func diffName(d delta.Difference) string {
	if d.New.Name != "" {
		return d.New.Name
	}
	return d.Old.Name
}
