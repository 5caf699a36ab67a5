package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matejk/thesischeck/internal/document"
	"github.com/matejk/thesischeck/internal/validation"
)

func TestFontPassesOnCompliantDocument(t *testing.T) {
	res := runCheck(t, NewFont(DefaultFontConfig()), complianceDoc())

	assert.Equal(t, validation.StatusPass, res.Status())
	assert.Zero(t, res.IssueCount())
}

func TestFontTreatsInheritedFormattingAsCompliant(t *testing.T) {
	doc := complianceDoc()
	for i := range doc.Paragraphs {
		for j := range doc.Paragraphs[i].Runs {
			doc.Paragraphs[i].Runs[j].FontFamily = ""
			doc.Paragraphs[i].Runs[j].FontSizePt = 0
		}
	}

	res := runCheck(t, NewFont(DefaultFontConfig()), doc)

	assert.Equal(t, validation.StatusPass, res.Status())
}

func TestFontFlagsForeignFamilyWithWrongSize(t *testing.T) {
	doc := complianceDoc()
	stray := bodyParagraph(bodySample)
	stray.Runs[0].FontFamily = "Arial"
	stray.Runs[0].FontSizePt = 10
	doc.Paragraphs = append(doc.Paragraphs, stray)

	res := runCheck(t, NewFont(DefaultFontConfig()), doc)

	assert.Equal(t, validation.StatusFail, res.Status())
	require.Equal(t, 2, res.IssueCount())

	family := res.Issues()[0]
	assert.Equal(t, `font family "Arial"`, family.Location)
	assert.Equal(t, validation.Major, family.Severity)

	// one paragraph out of five carries the wrong size, so the share band
	// lifts the 2 pt deviation to MAJOR
	size := res.Issues()[1]
	assert.Equal(t, "font size deviation -2.0 pt", size.Location)
	assert.Equal(t, validation.Major, size.Severity)
}

func TestFontGradesMarginalFamilyUsageInfo(t *testing.T) {
	doc := complianceDoc()
	doc.Paragraphs = append(doc.Paragraphs, document.Paragraph{
		Runs: []document.Run{{Text: "var x int", FontFamily: "Consolas", FontSizePt: 12}},
	})

	res := runCheck(t, NewFont(DefaultFontConfig()), doc)

	assert.Equal(t, validation.StatusWarning, res.Status())
	require.Equal(t, 1, res.IssueCount())
	issue := res.Issues()[0]
	assert.Equal(t, `font family "Consolas"`, issue.Location)
	assert.Equal(t, validation.Info, issue.Severity)
}

func TestFontEscalatesWidespreadSizeDeviation(t *testing.T) {
	// 1 pt sits below the deviation bands, but covering well over 10% of
	// the text makes it MAJOR.
	doc := complianceDoc()
	for i := range doc.Paragraphs {
		p := &doc.Paragraphs[i]
		if p.StyleName == "" {
			p.Runs[0].FontSizePt = 11
		}
	}

	res := runCheck(t, NewFont(DefaultFontConfig()), doc)

	assert.Equal(t, validation.StatusFail, res.Status())
	require.Equal(t, 1, res.IssueCount())
	issue := res.Issues()[0]
	assert.Equal(t, "font size deviation -1.0 pt", issue.Location)
	assert.Equal(t, validation.Major, issue.Severity)
}

func TestFontFlagsWrongPredominantFamily(t *testing.T) {
	doc := complianceDoc()
	for i := range doc.Paragraphs {
		for j := range doc.Paragraphs[i].Runs {
			doc.Paragraphs[i].Runs[j].FontFamily = "Calibri"
		}
	}

	res := runCheck(t, NewFont(DefaultFontConfig()), doc)

	assert.Equal(t, validation.StatusFail, res.Status())
	assert.Contains(t, issueLocations(res), "predominant font family")
}

func TestFontFlagsTooManyFamilies(t *testing.T) {
	doc := complianceDoc()
	for _, family := range []string{"Arial", "Calibri", "Georgia", "Verdana"} {
		p := bodyParagraph(bodySample)
		p.Runs[0].FontFamily = family
		doc.Paragraphs = append(doc.Paragraphs, p)
	}

	res := runCheck(t, NewFont(DefaultFontConfig()), doc)

	assert.Equal(t, validation.StatusFail, res.Status())
	assert.Contains(t, issueLocations(res), "font family count")
}

func TestFontCountsTableRuns(t *testing.T) {
	doc := complianceDoc()
	doc.Tables = []document.Table{{
		Rows: []document.TableRow{{
			Cells: []document.TableCell{{
				Paragraphs: []document.Paragraph{{
					Runs: []document.Run{{Text: bodySample, FontFamily: "Courier New", FontSizePt: 12}},
				}},
			}},
		}},
	}}

	res := runCheck(t, NewFont(DefaultFontConfig()), doc)

	assert.Equal(t, validation.StatusFail, res.Status())
	assert.Contains(t, issueLocations(res), `font family "Courier New"`)
}

func TestFontSkipsHeadingSizes(t *testing.T) {
	// 16 pt level-one headings must not trip the body size rule.
	doc := complianceDoc()
	res := runCheck(t, NewFont(DefaultFontConfig()), doc)

	for _, issue := range res.Issues() {
		assert.NotContains(t, issue.Location, "font size")
	}
}

func TestFontGradesLargeSizeDeviationMajor(t *testing.T) {
	doc := complianceDoc()
	for i := range doc.Paragraphs {
		p := &doc.Paragraphs[i]
		if p.StyleName == "" {
			p.Runs[0].FontSizePt = 18
		}
	}

	res := runCheck(t, NewFont(DefaultFontConfig()), doc)

	assert.Equal(t, validation.StatusFail, res.Status())
	found := false
	for _, issue := range res.Issues() {
		if issue.Location == "font size deviation +6.0 pt" {
			found = true
			assert.Equal(t, validation.Major, issue.Severity)
		}
	}
	assert.True(t, found)
}
