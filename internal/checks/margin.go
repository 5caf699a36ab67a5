package checks

import (
	"math"

	"github.com/matejk/thesischeck/internal/document"
	"github.com/matejk/thesischeck/internal/validation"
)

// MarginConfig controls the page margin rule. Deviations beyond the
// tolerance are graded by how far off they are: at least CriticalBandCm off
// is critical, at least MajorBandCm is major, anything smaller is minor.
type MarginConfig struct {
	RequiredCm     float64 `json:"required_cm" validate:"gt=0"`
	ToleranceCm    float64 `json:"tolerance_cm" validate:"gte=0"`
	CriticalBandCm float64 `json:"critical_band_cm" validate:"gt=0"`
	MajorBandCm    float64 `json:"major_band_cm" validate:"gt=0"`
}

// DefaultMarginConfig requires 2.5 cm on all sides with a one-point
// tolerance for rounding introduced by twentieths-of-a-point storage.
func DefaultMarginConfig() MarginConfig {
	return MarginConfig{
		RequiredCm:     2.5,
		ToleranceCm:    1.0 / document.PointsPerCm,
		CriticalBandCm: 1.0,
		MajorBandCm:    0.5,
	}
}

// Margin verifies that all four page margins match the required width.
type Margin struct {
	validation.Base
	cfg MarginConfig
}

func NewMargin(cfg MarginConfig) *Margin {
	return &Margin{
		Base: validation.NewBase(
			"margin",
			validation.Critical,
			"verifies page margins on all four sides",
		),
		cfg: cfg,
	}
}

func (m *Margin) Check(doc *document.Document) (validation.Result, error) {
	sides := []struct {
		name   string
		actual float64
	}{
		{"top margin", doc.Page.TopMarginCm},
		{"bottom margin", doc.Page.BottomMarginCm},
		{"left margin", doc.Page.LeftMarginCm},
		{"right margin", doc.Page.RightMarginCm},
	}

	var issues []validation.Issue
	for _, side := range sides {
		if withinTolerance(side.actual, m.cfg.RequiredCm, m.cfg.ToleranceCm) {
			continue
		}
		issue := validation.MustIssue(
			side.name,
			formatCm(m.cfg.RequiredCm),
			formatCmPrecise(side.actual),
			m.deviationSeverity(side.actual),
		).WithSuggestion("Set the " + side.name + " to " + formatCm(m.cfg.RequiredCm) + " in the page layout settings")
		issues = append(issues, issue)
	}

	return validation.ForIssues(m.Name(), issues), nil
}

func (m *Margin) deviationSeverity(actual float64) validation.Severity {
	deviation := math.Abs(actual - m.cfg.RequiredCm)
	switch {
	case deviation >= m.cfg.CriticalBandCm:
		return validation.Critical
	case deviation >= m.cfg.MajorBandCm:
		return validation.Major
	default:
		return validation.Minor
	}
}
