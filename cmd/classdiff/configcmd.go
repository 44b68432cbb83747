package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sgothel/classdiff/internal/config"
)

var (
	configInitCriteriaFlag       string
	configInitIncludePrivateFlag bool
	configInitOldLabelFlag       string
	configInitNewLabelFlag       string
	configInitSepFlag            string
	configInitForceFlag          bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage classdiff YAML defaults files",
}

var configInitCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Write a classdiff YAML defaults file, seeded from the built-in defaults",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigInitCmd,
}

func init() {
	configInitCmd.Flags().StringVar(&configInitCriteriaFlag, "criteria", "", "public, public-protected, or simple")
	configInitCmd.Flags().BoolVar(&configInitIncludePrivateFlag, "include-private", false, "include private members (criteria=simple only)")
	configInitCmd.Flags().StringVar(&configInitOldLabelFlag, "old-label", "", "label for the old snapshot in output")
	configInitCmd.Flags().StringVar(&configInitNewLabelFlag, "new-label", "", "label for the new snapshot in output")
	configInitCmd.Flags().StringVar(&configInitSepFlag, "sep", "", "pre-release separator rune")
	configInitCmd.Flags().BoolVar(&configInitForceFlag, "force", false, "overwrite path if it already exists")
	configCmd.AddCommand(configInitCmd)
}

func runConfigInitCmd(cmd *cobra.Command, args []string) error {
	path := args[0]
	if !configInitForceFlag {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config: %s already exists; pass --force to overwrite", path)
		}
	}

	cfg := config.Default()
	if configInitCriteriaFlag != "" {
		cfg.Criteria = configInitCriteriaFlag
	}
	if configInitIncludePrivateFlag {
		cfg.IncludePrivate = true
	}
	if configInitOldLabelFlag != "" {
		cfg.OldLabel = configInitOldLabelFlag
	}
	if configInitNewLabelFlag != "" {
		cfg.NewLabel = configInitNewLabelFlag
	}
	if configInitSepFlag != "" {
		cfg.Separator = configInitSepFlag
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
