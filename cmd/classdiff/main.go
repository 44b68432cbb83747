// Command classdiff compares two VMCF class-dump directories and reports
// API differences plus inferred/validated semantic versions.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "classdiff",
	Short: "Compare two compiled-class snapshots and classify the API change",
	Long: `classdiff compares two directories of class-dump JSON documents
(one per class, standing in for a real VMCF artifact) and reports the
structured set of API differences between them, along with the semantic-
version bump that change requires.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(diffCmd, inferCmd, validateCmd, versionCmd, configCmd)
}
