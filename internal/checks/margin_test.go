package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matejk/thesischeck/internal/validation"
)

func TestMarginPassesOnCompliantDocument(t *testing.T) {
	res := runCheck(t, NewMargin(DefaultMarginConfig()), complianceDoc())

	assert.Equal(t, validation.StatusPass, res.Status())
	assert.Zero(t, res.IssueCount())
}

func TestMarginToleratesRoundingNoise(t *testing.T) {
	doc := complianceDoc()
	doc.Page.TopMarginCm = 2.499 // twip rounding, inside the 1 pt tolerance

	res := runCheck(t, NewMargin(DefaultMarginConfig()), doc)

	assert.Equal(t, validation.StatusPass, res.Status())
}

func TestMarginGradesDeviationBySize(t *testing.T) {
	tests := []struct {
		name     string
		actual   float64
		severity validation.Severity
	}{
		{"slightly narrow", 2.2, validation.Minor},
		{"half centimeter off", 2.0, validation.Major},
		{"full centimeter off", 1.5, validation.Critical},
		{"too wide", 4.0, validation.Critical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := complianceDoc()
			doc.Page.LeftMarginCm = tt.actual

			res := runCheck(t, NewMargin(DefaultMarginConfig()), doc)

			require.Equal(t, 1, res.IssueCount())
			issue := res.Issues()[0]
			assert.Equal(t, "left margin", issue.Location)
			assert.Equal(t, tt.severity, issue.Severity)
			assert.NotEmpty(t, issue.Suggestion)
		})
	}
}

func TestMarginToleranceBoundary(t *testing.T) {
	cfg := DefaultMarginConfig()
	cfg.ToleranceCm = 0.125 // exactly representable, keeps the boundary exact

	tests := []struct {
		name   string
		actual float64
		issues int
	}{
		{"exactly tolerance above", 2.625, 0},
		{"exactly tolerance below", 2.375, 0},
		{"just past tolerance above", 2.63, 1},
		{"just past tolerance below", 2.37, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := complianceDoc()
			doc.Page.TopMarginCm = tt.actual

			res := runCheck(t, NewMargin(cfg), doc)

			require.Equal(t, tt.issues, res.IssueCount())
			if tt.issues > 0 {
				assert.Equal(t, validation.Minor, res.Issues()[0].Severity)
			} else {
				assert.Equal(t, validation.StatusPass, res.Status())
			}
		})
	}
}

func TestMarginReportsEverySideIndependently(t *testing.T) {
	doc := complianceDoc()
	doc.Page.TopMarginCm = 2.0
	doc.Page.BottomMarginCm = 2.0
	doc.Page.RightMarginCm = 3.1

	res := runCheck(t, NewMargin(DefaultMarginConfig()), doc)

	assert.Equal(t, validation.StatusFail, res.Status())
	assert.Equal(t, []string{"top margin", "bottom margin", "right margin"}, issueLocations(res))
}

func TestMarginMinorDeviationYieldsWarning(t *testing.T) {
	doc := complianceDoc()
	doc.Page.TopMarginCm = 2.3

	res := runCheck(t, NewMargin(DefaultMarginConfig()), doc)

	assert.Equal(t, validation.StatusWarning, res.Status())
}
