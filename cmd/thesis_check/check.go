package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matejk/thesischeck/internal/config"
	"github.com/matejk/thesischeck/internal/document"
	"github.com/matejk/thesischeck/internal/docx"
	"github.com/matejk/thesischeck/internal/observability"
	"github.com/matejk/thesischeck/internal/report"
	"github.com/matejk/thesischeck/internal/validation"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.docx>",
	Short: "Check a DOCX document against the formatting rules",
	Long:  "Check runs every enabled formatting rule against the document and prints a report. The exit code is 0 when all checks pass, 1 when only warnings were found, and 2 when any check failed or errored.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

var (
	checkRules           string
	checkJSON            bool
	checkVerbose         bool
	checkSkip            []string
	checkOnly            []string
	checkParallel        int
	checkFailFast        bool
	checkContinueOnError bool
)

func init() {
	checkCmd.Flags().StringVar(&checkRules, "rules", "", "Path to a rulebook JSON file (defaults to the built-in rules)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the report as JSON")
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Print document details and every issue")
	checkCmd.Flags().StringSliceVar(&checkSkip, "skip", nil, "Check names to skip")
	checkCmd.Flags().StringSliceVar(&checkOnly, "only", nil, "Run only the named checks")
	checkCmd.Flags().IntVar(&checkParallel, "parallel", 1, "Number of checks to run concurrently")
	checkCmd.Flags().BoolVar(&checkFailFast, "fail-fast", false, "Stop at the first failing check")
	checkCmd.Flags().BoolVar(&checkContinueOnError, "continue-on-error", false, "Record check execution failures as ERROR results instead of aborting")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	rb := config.Default()
	if checkRules != "" {
		loaded, err := config.Load(checkRules)
		if err != nil {
			return err
		}
		rb = loaded
	}

	validators, err := selectValidators(rb)
	if err != nil {
		return err
	}

	doc, err := docx.Load(args[0])
	if err != nil {
		return err
	}

	var opts []report.Option
	if checkParallel > 1 {
		opts = append(opts, report.WithParallelism(checkParallel))
	}
	if checkFailFast {
		opts = append(opts, report.WithFailFast())
	}
	if checkContinueOnError {
		opts = append(opts, report.WithContinueOnError())
	}

	rep, err := report.NewRunner(validators, opts...).Run(cmd.Context(), doc)
	if err != nil {
		return err
	}

	if checkJSON {
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		printReport(cmd, doc, rep)
	}

	exitCode = exitCodeFor(rep)
	return nil
}

// exitCodeFor maps the aggregated outcome to the process exit code: 0 pass,
// 1 warnings only, 2 failed or errored checks.
func exitCodeFor(rep *report.Report) int {
	switch {
	case rep.Overall() == validation.StatusFail || rep.HasErrors():
		return 2
	case rep.Overall() == validation.StatusWarning:
		return 1
	default:
		return 0
	}
}

// selectValidators applies --skip and --only on top of the rulebook's
// disabled list. Unknown names are rejected so typos do not silently pass a
// document.
func selectValidators(rb config.Rulebook) ([]validation.Validator, error) {
	validators := rb.Validators()

	known := make(map[string]bool, len(validators))
	for _, v := range validators {
		known[v.Name()] = true
	}
	for _, name := range append(append([]string{}, checkSkip...), checkOnly...) {
		if !known[name] {
			return nil, fmt.Errorf("unknown check %q", name)
		}
	}
	if len(checkSkip) > 0 && len(checkOnly) > 0 {
		return nil, fmt.Errorf("--skip and --only are mutually exclusive")
	}

	for _, v := range validators {
		s, ok := v.(interface{ SetEnabled(bool) })
		if !ok {
			continue
		}
		if len(checkOnly) > 0 && !contains(checkOnly, v.Name()) {
			s.SetEnabled(false)
		}
		if contains(checkSkip, v.Name()) {
			s.SetEnabled(false)
		}
	}
	return validators, nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func printReport(cmd *cobra.Command, doc *document.Document, rep *report.Report) {
	out := cmd.OutOrStdout()
	printer := observability.NewPrinter(out)

	if checkVerbose {
		printer.PrintDocumentInfo(doc)
		for _, res := range rep.Results {
			printer.PrintResult(res)
		}
	} else {
		for _, res := range rep.Results {
			marker := "✓"
			if res.Status() == validation.StatusFail || res.Status() == validation.StatusError {
				marker = "✗"
			} else if res.Status() == validation.StatusWarning {
				marker = "!"
			} else if res.Status() == validation.StatusSkip {
				marker = "-"
			}
			fmt.Fprintf(out, "%s %-18s %s\n", marker, res.Validator(), res.Message())
		}
	}

	printer.PrintReport(rep)

	if !rep.Successful() {
		fmt.Fprintf(os.Stderr, "Document does not meet the formatting requirements (%d issues)\n", rep.TotalIssues())
	}
}
