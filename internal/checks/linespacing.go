package checks

import (
	"fmt"
	"math"

	"github.com/matejk/thesischeck/internal/document"
	"github.com/matejk/thesischeck/internal/validation"
)

// LineSpacingConfig controls the line spacing rule. Spacing values are
// multipliers of single spacing; paragraphs without explicit spacing inherit
// the document default and are treated as conforming.
type LineSpacingConfig struct {
	RequiredFactor float64 `json:"required_factor" validate:"gt=0"`
	Tolerance      float64 `json:"tolerance" validate:"gte=0"`
	MajorDeviation float64 `json:"major_deviation" validate:"gt=0"`
	MinorDeviation float64 `json:"minor_deviation" validate:"gt=0"`
	MinorShare     float64 `json:"minor_share" validate:"gt=0,lte=1"`
	MaxDistinct    int     `json:"max_distinct" validate:"gt=0"`
}

// DefaultLineSpacingConfig requires one-and-a-half spacing.
func DefaultLineSpacingConfig() LineSpacingConfig {
	return LineSpacingConfig{
		RequiredFactor: 1.5,
		Tolerance:      0.1,
		MajorDeviation: 0.5,
		MinorDeviation: 0.2,
		MinorShare:     0.05,
		MaxDistinct:    3,
	}
}

// LineSpacing verifies that paragraphs use the required spacing multiplier
// and that spacing stays consistent across the document. Footnote-styled
// paragraphs are exempt; they conventionally use single spacing.
type LineSpacing struct {
	validation.Base
	cfg LineSpacingConfig
}

func NewLineSpacing(cfg LineSpacingConfig) *LineSpacing {
	return &LineSpacing{
		Base: validation.NewBase(
			"line-spacing",
			validation.Major,
			"verifies line spacing and its consistency",
		),
		cfg: cfg,
	}
}

func (l *LineSpacing) Check(doc *document.Document) (validation.Result, error) {
	usage := make(map[float64]int)
	total := 0
	for i := range doc.Paragraphs {
		p := &doc.Paragraphs[i]
		if p.LineSpacing == 0 || len(p.Text()) == 0 || isFootnoteStyle(p) {
			continue
		}
		total++
		usage[math.Round(p.LineSpacing*100)/100]++
	}
	if total == 0 {
		return validation.Pass(l.Name()), nil
	}

	var issues []validation.Issue
	for _, value := range sortedKeys(usage) {
		deviation := math.Abs(value - l.cfg.RequiredFactor)
		if deviation <= l.cfg.Tolerance {
			continue
		}
		share := float64(usage[value]) / float64(total)
		if share < l.cfg.MinorShare {
			continue
		}
		severity := validation.Info
		switch {
		case deviation >= l.cfg.MajorDeviation:
			severity = validation.Major
		case deviation >= l.cfg.MinorDeviation:
			severity = validation.Minor
		}
		issue := validation.MustIssue(
			fmt.Sprintf("line spacing %s", formatFactor(value)),
			formatFactor(l.cfg.RequiredFactor),
			fmt.Sprintf("%s used in %d paragraphs (%s)", formatFactor(value), usage[value], formatPercent(share)),
			severity,
		).WithSuggestion("Set paragraph line spacing to " + formatFactor(l.cfg.RequiredFactor))
		issues = append(issues, issue)
	}

	if predominant := predominantSpacing(usage); !withinTolerance(predominant, l.cfg.RequiredFactor, l.cfg.Tolerance) {
		issues = append(issues, validation.MustIssue(
			"predominant line spacing",
			formatFactor(l.cfg.RequiredFactor),
			formatFactor(predominant),
			validation.Major,
		).WithSuggestion("Set the document's default line spacing to "+formatFactor(l.cfg.RequiredFactor)))
	}

	if len(usage) > l.cfg.MaxDistinct {
		issues = append(issues, validation.MustIssue(
			"line spacing variety",
			fmt.Sprintf("at most %d distinct spacing values", l.cfg.MaxDistinct),
			fmt.Sprintf("%d distinct spacing values in use", len(usage)),
			validation.Minor,
		).WithSuggestion("Unify line spacing across the document"))
	}

	return validation.ForIssues(l.Name(), issues), nil
}

// predominantSpacing returns the most used explicit spacing value, breaking
// ties in favor of the smaller value for determinism.
func predominantSpacing(usage map[float64]int) float64 {
	best := 0.0
	bestCount := 0
	for _, value := range sortedKeys(usage) {
		if usage[value] > bestCount {
			best, bestCount = value, usage[value]
		}
	}
	return best
}
