package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sgothel/classdiff/internal/config"
	"github.com/sgothel/classdiff/internal/delta"
	"github.com/sgothel/classdiff/internal/obslog"
)

var (
	validateCriteriaFlag       string
	validateIncludePrivateFlag bool
	validatePreviousFlag       string
	validateCurrentFlag        string
	validateConfigFlag         string
	validateSepFlag            string
)

var validateCmd = &cobra.Command{
	Use:   "validate <old-dir> <new-dir>",
	Short: "Validate a proposed next version against a diff and a previous version",
	Args:  cobra.ExactArgs(2),
	RunE:  runValidateCmd,
}

func init() {
	validateCmd.Flags().StringVar(&validateCriteriaFlag, "criteria", "", "public, public-protected, or simple (default from config, else public)")
	validateCmd.Flags().BoolVar(&validateIncludePrivateFlag, "include-private", false, "include private members (criteria=simple only)")
	validateCmd.Flags().StringVar(&validatePreviousFlag, "previous", "", "the old snapshot's released version (required)")
	validateCmd.Flags().StringVar(&validateCurrentFlag, "current", "", "the proposed next version (required)")
	validateCmd.Flags().StringVar(&validateConfigFlag, "config", "", "path to a classdiff YAML config file")
	validateCmd.Flags().StringVar(&validateSepFlag, "sep", "", "pre-release separator rune (default from config, else '-')")
	_ = validateCmd.MarkFlagRequired("previous")
	_ = validateCmd.MarkFlagRequired("current")
}

func runValidateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(validateConfigFlag)
	if err != nil {
		return err
	}
	if validateCriteriaFlag != "" {
		cfg.Criteria = validateCriteriaFlag
	}
	if validateIncludePrivateFlag {
		cfg.IncludePrivate = true
	}
	if validateSepFlag != "" {
		cfg.Separator = validateSepFlag
	}

	criteria, err := buildCriteria(cfg.Criteria, cfg.IncludePrivate)
	if err != nil {
		return err
	}

	previous, err := delta.ParseVersion(validatePreviousFlag, cfg.SeparatorRune())
	if err != nil {
		return fmt.Errorf("--previous: %w", err)
	}
	current, err := delta.ParseVersion(validateCurrentFlag, cfg.SeparatorRune())
	if err != nil {
		return fmt.Errorf("--current: %w", err)
	}

	result, err := runDiff(args[0], args[1], criteria, cfg.OldLabel, cfg.NewLabel, previous.IsDevelopment(), obslog.Discard())
	if err != nil {
		return err
	}

	ok, err := result.delta.Validate(&previous, &current)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "invalid: %s does not satisfy the %s bump required from %s\n", current, result.delta.Category(), previous)
		os.Exit(1)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "valid: %s satisfies the %s bump required from %s\n", current, result.delta.Category(), previous)
	return nil
}
