package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "grouping",
	Short: "Assign meeting participants to randomized discussion groups",
	Long: `Grouping assigns the participants of a recurring meeting into small
discussion groups, avoiding repeat pairings by consulting the matching
history of past meetings and optionally mixing across categorical
attributes such as seniority or team.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
