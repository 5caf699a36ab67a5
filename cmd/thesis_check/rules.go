package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/matejk/thesischeck/internal/config"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the available formatting checks",
	Long:  "Rules lists every formatting check with its default severity and whether the given rulebook enables it.",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

var rulesRulebook string

func init() {
	rulesCmd.Flags().StringVar(&rulesRulebook, "rules", "", "Path to a rulebook JSON file (defaults to the built-in rules)")

	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, _ []string) error {
	rb := config.Default()
	if rulesRulebook != "" {
		loaded, err := config.Load(rulesRulebook)
		if err != nil {
			return err
		}
		rb = loaded
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSEVERITY\tENABLED\tDESCRIPTION")
	for _, v := range rb.Validators() {
		fmt.Fprintf(w, "%s\t%s\t%t\t%s\n",
			v.Name(),
			strings.ToUpper(v.DefaultSeverity().String()),
			v.Enabled(),
			v.Description(),
		)
	}
	return w.Flush()
}
