package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "verifier",
	Short: "Judicial process verification service",
	Long: `Verifier evaluates judicial process records against the JusCash
acquisition policy and decides whether each credit should be approved,
rejected, or returned for completion.

The judgment itself is delegated to a reasoning service constrained to a
structured decision schema; this server owns validation, the policy text,
the HTTP surface, and the failure taxonomy.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
