package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ecmaparse version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("ecmaparse version %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
