// Package checks implements the formatting rules applied to a document:
// page geometry, margins, fonts, line spacing, heading structure, paragraph
// layout, and list nesting. Each rule is a validation.Validator built on
// validation.Base and driven by a config struct with loadable defaults.
package checks

import (
	"fmt"
	"math"
	"sort"

	"github.com/matejk/thesischeck/internal/document"
	"github.com/matejk/thesischeck/internal/validation"
)

// Config bundles the settings for every rule. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	PageFormat  PageFormatConfig  `json:"page_format" validate:"required"`
	Margin      MarginConfig      `json:"margin" validate:"required"`
	Font        FontConfig        `json:"font" validate:"required"`
	LineSpacing LineSpacingConfig `json:"line_spacing" validate:"required"`
	Heading     HeadingConfig     `json:"heading" validate:"required"`
	Paragraph   ParagraphConfig   `json:"paragraph" validate:"required"`
	List        ListConfig        `json:"list" validate:"required"`
}

// DefaultConfig returns the standard thesis formatting rules.
func DefaultConfig() Config {
	return Config{
		PageFormat:  DefaultPageFormatConfig(),
		Margin:      DefaultMarginConfig(),
		Font:        DefaultFontConfig(),
		LineSpacing: DefaultLineSpacingConfig(),
		Heading:     DefaultHeadingConfig(),
		Paragraph:   DefaultParagraphConfig(),
		List:        DefaultListConfig(),
	}
}

// All returns every rule in execution order. Structural page checks run
// first, content checks after.
func All(cfg Config) []validation.Validator {
	return []validation.Validator{
		NewPageFormat(cfg.PageFormat),
		NewMargin(cfg.Margin),
		NewFont(cfg.Font),
		NewLineSpacing(cfg.LineSpacing),
		NewHeading(cfg.Heading),
		NewParagraph(cfg.Paragraph),
		NewList(cfg.List),
	}
}

func formatCm(value float64) string {
	return fmt.Sprintf("%.1f cm", value)
}

func formatCmPrecise(value float64) string {
	return fmt.Sprintf("%.2f cm", value)
}

func formatPt(value float64) string {
	return fmt.Sprintf("%.1f pt", value)
}

func formatFactor(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func formatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value*100)
}

func withinTolerance(actual, expected, tolerance float64) bool {
	return math.Abs(actual-expected) <= tolerance
}

// sortedKeys returns map keys in ascending order so issue emission stays
// deterministic across runs.
func sortedKeys[K interface {
	~string | ~int | ~float64
}, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func isHeadingStyle(p *document.Paragraph) bool {
	return headingStylePattern.MatchString(p.StyleName)
}

func isFootnoteStyle(p *document.Paragraph) bool {
	return footnoteStylePattern.MatchString(p.StyleName)
}
