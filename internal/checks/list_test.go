package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matejk/thesischeck/internal/validation"
)

func TestListPassesWithoutLists(t *testing.T) {
	res := runCheck(t, NewList(DefaultListConfig()), complianceDoc())

	assert.Equal(t, validation.StatusPass, res.Status())
}

func TestListPassesOnWellFormedList(t *testing.T) {
	doc := complianceDoc()
	doc.Paragraphs = append(doc.Paragraphs,
		listParagraph(0, 1, "first item", 1.25),
		listParagraph(1, 2, "nested item", 2.5),
		listParagraph(2, 3, "deeper item", 3.75),
		listParagraph(0, 1, "second item", 1.25),
	)

	res := runCheck(t, NewList(DefaultListConfig()), doc)

	assert.Equal(t, validation.StatusPass, res.Status())
	assert.Zero(t, res.IssueCount())
}

func TestListFlagsExcessiveNesting(t *testing.T) {
	doc := complianceDoc()
	doc.Paragraphs = append(doc.Paragraphs,
		listParagraph(0, 1, "level one", 1.25),
		listParagraph(1, 2, "level two", 2.5),
		listParagraph(2, 3, "level three", 3.75),
		listParagraph(3, 4, "level four", 5.0),
	)

	res := runCheck(t, NewList(DefaultListConfig()), doc)

	assert.Equal(t, validation.StatusFail, res.Status())
	require.Equal(t, 1, res.IssueCount())
	issue := res.Issues()[0]
	assert.Equal(t, "list item 4", issue.Location)
	assert.Equal(t, "nesting depth 4", issue.Actual)
	assert.Equal(t, validation.Major, issue.Severity)
}

func TestListFlagsMixedNumberingAtSameLevel(t *testing.T) {
	doc := complianceDoc()
	doc.Paragraphs = append(doc.Paragraphs,
		listParagraph(0, 1, "numbered item", 1.25),
		listParagraph(0, 7, "bulleted item", 1.25),
	)

	res := runCheck(t, NewList(DefaultListConfig()), doc)

	assert.Equal(t, validation.StatusWarning, res.Status())
	require.Equal(t, 1, res.IssueCount())
	assert.Equal(t, validation.Minor, res.Issues()[0].Severity)
}

func TestListResetsConsistencyBetweenLists(t *testing.T) {
	doc := complianceDoc()
	doc.Paragraphs = append(doc.Paragraphs,
		listParagraph(0, 1, "first list", 1.25),
		bodyParagraph(bodySample),
		listParagraph(0, 7, "second list", 1.25),
	)

	res := runCheck(t, NewList(DefaultListConfig()), doc)

	assert.Equal(t, validation.StatusPass, res.Status())
}

func TestListFlagsWrongIndentation(t *testing.T) {
	doc := complianceDoc()
	doc.Paragraphs = append(doc.Paragraphs,
		listParagraph(0, 1, "top item", 3.0),
	)

	res := runCheck(t, NewList(DefaultListConfig()), doc)

	assert.Equal(t, validation.StatusWarning, res.Status())
	issue := res.Issues()[0]
	assert.Equal(t, "1.25 cm indentation", issue.Expected)
	assert.Equal(t, "3.00 cm indentation", issue.Actual)
}

func TestListSkipsMissingIndentation(t *testing.T) {
	doc := complianceDoc()
	doc.Paragraphs = append(doc.Paragraphs,
		listParagraph(0, 1, "no explicit indent", 0),
	)

	res := runCheck(t, NewList(DefaultListConfig()), doc)

	assert.Equal(t, validation.StatusPass, res.Status())
}
