package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ad",
	Long:  `Print the version number of ad.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ad %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
