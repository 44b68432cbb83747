package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgothel/classdiff/internal/config"
	"github.com/sgothel/classdiff/internal/delta"
	"github.com/sgothel/classdiff/internal/obslog"
)

var (
	inferCriteriaFlag       string
	inferIncludePrivateFlag bool
	inferBaselineFlag       string
	inferConfigFlag         string
	inferSepFlag            string
)

var inferCmd = &cobra.Command{
	Use:   "infer <old-dir> <new-dir>",
	Short: "Infer the next semantic version from a diff and a baseline version",
	Args:  cobra.ExactArgs(2),
	RunE:  runInferCmd,
}

func init() {
	inferCmd.Flags().StringVar(&inferCriteriaFlag, "criteria", "", "public, public-protected, or simple (default from config, else public)")
	inferCmd.Flags().BoolVar(&inferIncludePrivateFlag, "include-private", false, "include private members (criteria=simple only)")
	inferCmd.Flags().StringVar(&inferBaselineFlag, "baseline", "", "the old snapshot's released version (required)")
	inferCmd.Flags().StringVar(&inferConfigFlag, "config", "", "path to a classdiff YAML config file")
	inferCmd.Flags().StringVar(&inferSepFlag, "sep", "", "pre-release separator rune (default from config, else '-')")
	_ = inferCmd.MarkFlagRequired("baseline")
}

func runInferCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(inferConfigFlag)
	if err != nil {
		return err
	}
	if inferCriteriaFlag != "" {
		cfg.Criteria = inferCriteriaFlag
	}
	if inferIncludePrivateFlag {
		cfg.IncludePrivate = true
	}
	if inferSepFlag != "" {
		cfg.Separator = inferSepFlag
	}

	criteria, err := buildCriteria(cfg.Criteria, cfg.IncludePrivate)
	if err != nil {
		return err
	}

	baseline, err := delta.ParseVersion(inferBaselineFlag, cfg.SeparatorRune())
	if err != nil {
		return fmt.Errorf("--baseline: %w", err)
	}

	result, err := runDiff(args[0], args[1], criteria, cfg.OldLabel, cfg.NewLabel, baseline.IsDevelopment(), obslog.Discard())
	if err != nil {
		return err
	}

	next, err := result.delta.Infer(&baseline)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), next.String())
	return nil
}
