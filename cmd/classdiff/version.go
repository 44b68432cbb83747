package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgothel/classdiff/internal/meta"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print classdiff's own build version",
	Run: func(cmd *cobra.Command, args []string) {
		info := meta.ReadBuildInfo()
		fmt.Fprintf(cmd.OutOrStdout(), "classdiff %s (%s)\n", info.Version, info.GoVersion)
		if info.Revision != "" {
			dirty := ""
			if info.Dirty {
				dirty = "-dirty"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  revision %s%s\n", info.Revision, dirty)
		}
	},
}
