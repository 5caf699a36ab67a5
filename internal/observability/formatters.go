// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/matejk/thesischeck/internal/document"
	"github.com/matejk/thesischeck/internal/report"
	"github.com/matejk/thesischeck/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxIssuesToShow is the default number of issues to display per check
	maxIssuesToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocumentInfo outputs a human-readable summary of the loaded document.
func (p *Printer) PrintDocumentInfo(doc *document.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:       %s\n", doc.Metadata.FileName))
	if doc.Metadata.Title != "" {
		sb.WriteString(fmt.Sprintf("Title:      %s\n", doc.Metadata.Title))
	}
	sb.WriteString(fmt.Sprintf("Layout:     %s\n", doc.Page.LayoutSummary()))
	sb.WriteString(fmt.Sprintf("Paragraphs: %d\n", len(doc.Paragraphs)))
	sb.WriteString(fmt.Sprintf("Tables:     %d\n", len(doc.Tables)))
	sb.WriteString(fmt.Sprintf("Words:      %d (≈%d pages)", doc.WordCount(), doc.EstimatedPageCount()))

	p.printBox("DOCUMENT", sb.String())
}

// PrintResult outputs one check result with its issues.
func (p *Printer) PrintResult(res validation.Result) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status:  %s\n", strings.ToUpper(res.Status().String())))
	sb.WriteString(fmt.Sprintf("Message: %s", res.Message()))

	issues := res.Issues()
	if len(issues) > 0 {
		sb.WriteString("\n")
		count := min(len(issues), maxIssuesToShow)
		for i := 0; i < count; i++ {
			issue := issues[i]
			sb.WriteString(fmt.Sprintf("\n• [%s] %s\n", strings.ToUpper(issue.Severity.String()), issue.Location))
			sb.WriteString(fmt.Sprintf("  expected %s, found %s", issue.Expected, issue.Actual))
			if issue.Suggestion != "" {
				sb.WriteString(fmt.Sprintf("\n  → %s", issue.Suggestion))
			}
		}
		if len(issues) > maxIssuesToShow {
			sb.WriteString(fmt.Sprintf("\n\n... and %d more issues", len(issues)-maxIssuesToShow))
		}
	}

	p.printBox("CHECK: "+strings.ToUpper(res.Validator()), sb.String())
}

// PrintReport outputs the aggregated verdict with per-severity issue counts.
func (p *Printer) PrintReport(rep *report.Report) {
	if rep == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %s\n", strings.ToUpper(rep.Overall().String())))
	sb.WriteString(fmt.Sprintf("Checks:   %d\n", len(rep.Results)))
	sb.WriteString(fmt.Sprintf("Issues:   %d\n", rep.TotalIssues()))
	sb.WriteString(fmt.Sprintf("Duration: %s", rep.Duration.Round(time.Millisecond)))

	counts := rep.IssuesBySeverity()
	if len(counts) > 0 {
		sb.WriteString("\n")
		for _, severity := range validation.Severities() {
			if counts[severity] == 0 {
				continue
			}
			sb.WriteString(fmt.Sprintf("\n%-9s %d", strings.ToUpper(severity.String())+":", counts[severity]))
		}
	}

	p.printBox("REPORT "+rep.ID.String()[:8], sb.String())
}
