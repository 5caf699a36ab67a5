// Package main provides the entry point for the thesis formatting checker CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "thesis_check",
	Short: "DOCX thesis formatting checker",
	Long:  "thesis_check verifies DOCX documents against institutional formatting rules: page format, margins, fonts, line spacing, heading structure, paragraphs, and lists.",
}

// exitCode is set by subcommands that map check outcomes to process exit
// codes: 0 pass, 1 warnings only, 2 failed or errored checks.
var exitCode int

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}
