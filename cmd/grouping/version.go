package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	grouping "github.com/timmens/random-grouping"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of grouping",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("grouping version %s\n", strings.TrimSpace(grouping.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
