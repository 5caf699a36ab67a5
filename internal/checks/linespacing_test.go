package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matejk/thesischeck/internal/document"
	"github.com/matejk/thesischeck/internal/validation"
)

func TestLineSpacingPassesOnCompliantDocument(t *testing.T) {
	res := runCheck(t, NewLineSpacing(DefaultLineSpacingConfig()), complianceDoc())

	assert.Equal(t, validation.StatusPass, res.Status())
}

func TestLineSpacingPassesWhenAllSpacingInherited(t *testing.T) {
	doc := complianceDoc()
	for i := range doc.Paragraphs {
		doc.Paragraphs[i].LineSpacing = 0
	}

	res := runCheck(t, NewLineSpacing(DefaultLineSpacingConfig()), doc)

	assert.Equal(t, validation.StatusPass, res.Status())
}

func TestLineSpacingToleratesSmallDrift(t *testing.T) {
	doc := complianceDoc()
	doc.Paragraphs[1].LineSpacing = 1.45

	res := runCheck(t, NewLineSpacing(DefaultLineSpacingConfig()), doc)

	assert.Equal(t, validation.StatusPass, res.Status())
}

func TestLineSpacingFlagsSingleSpacedDocument(t *testing.T) {
	doc := complianceDoc()
	for i := range doc.Paragraphs {
		if doc.Paragraphs[i].LineSpacing != 0 {
			doc.Paragraphs[i].LineSpacing = 1.0
		}
	}

	res := runCheck(t, NewLineSpacing(DefaultLineSpacingConfig()), doc)

	assert.Equal(t, validation.StatusFail, res.Status())
	locations := issueLocations(res)
	assert.Contains(t, locations, "line spacing 1.00")
	assert.Contains(t, locations, "predominant line spacing")
}

func TestLineSpacingGradesDeviationBySize(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		severity validation.Severity
	}{
		{"double spacing", 2.0, validation.Major},
		{"moderate deviation", 1.25, validation.Minor},
		{"slight deviation", 1.65, validation.Info},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := complianceDoc()
			doc.Paragraphs[1].LineSpacing = tt.value

			res := runCheck(t, NewLineSpacing(DefaultLineSpacingConfig()), doc)

			require.Equal(t, 1, res.IssueCount())
			assert.Equal(t, tt.severity, res.Issues()[0].Severity)
		})
	}
}

func TestLineSpacingIgnoresFootnotes(t *testing.T) {
	doc := complianceDoc()
	doc.Paragraphs = append(doc.Paragraphs, document.Paragraph{
		StyleName:   "FootnoteText",
		LineSpacing: 1.0,
		Runs:        []document.Run{{Text: "See also chapter two."}},
	})

	res := runCheck(t, NewLineSpacing(DefaultLineSpacingConfig()), doc)

	assert.Equal(t, validation.StatusPass, res.Status())
}

func TestLineSpacingFlagsTooManyDistinctValues(t *testing.T) {
	doc := complianceDoc()
	doc.Paragraphs[1].LineSpacing = 1.4
	doc.Paragraphs[3].LineSpacing = 1.6
	doc.Paragraphs[5].LineSpacing = 1.55

	res := runCheck(t, NewLineSpacing(DefaultLineSpacingConfig()), doc)

	assert.Contains(t, issueLocations(res), "line spacing variety")
}
