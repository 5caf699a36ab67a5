package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matejk/thesischeck/internal/document"
	"github.com/matejk/thesischeck/internal/validation"
)

type stubValidator struct {
	validation.Base
	check func(doc *document.Document) (validation.Result, error)
}

func newStub(name string, check func(doc *document.Document) (validation.Result, error)) *stubValidator {
	return &stubValidator{
		Base:  validation.NewBase(name, validation.Major, "stub validator"),
		check: check,
	}
}

func (s *stubValidator) Check(doc *document.Document) (validation.Result, error) {
	return s.check(doc)
}

func passing(name string) *stubValidator {
	return newStub(name, func(*document.Document) (validation.Result, error) {
		return validation.Pass(name), nil
	})
}

func failing(name string) *stubValidator {
	return newStub(name, func(*document.Document) (validation.Result, error) {
		issue := validation.MustIssue("somewhere", "this", "that", validation.Major)
		return validation.Fail(name, []validation.Issue{issue}), nil
	})
}

func warning(name string) *stubValidator {
	return newStub(name, func(*document.Document) (validation.Result, error) {
		issue := validation.MustIssue("somewhere", "this", "that", validation.Minor)
		return validation.Warning(name, []validation.Issue{issue}), nil
	})
}

func erroring(name string) *stubValidator {
	return newStub(name, func(*document.Document) (validation.Result, error) {
		return validation.Result{}, errors.New("rule logic exploded")
	})
}

func usableDoc() *document.Document {
	words := strings.Repeat("lorem ipsum dolor sit amet consectetur ", 5)
	doc := &document.Document{
		Metadata: document.Metadata{FileName: "thesis.docx", Title: "1 Introduction"},
		Page:     document.A4Portrait(),
	}
	for i := 0; i < 4; i++ {
		doc.Paragraphs = append(doc.Paragraphs, document.Paragraph{
			Runs: []document.Run{{Text: words}},
		})
	}
	return doc
}

func TestRunnerRunsValidatorsInOrder(t *testing.T) {
	runner := NewRunner([]validation.Validator{passing("a"), warning("b"), passing("c")})

	rep, err := runner.Run(context.Background(), usableDoc())
	require.NoError(t, err)

	require.Len(t, rep.Results, 3)
	assert.Equal(t, "a", rep.Results[0].Validator())
	assert.Equal(t, "b", rep.Results[1].Validator())
	assert.Equal(t, "c", rep.Results[2].Validator())
	assert.NotEqual(t, uuid.Nil, rep.ID)
	assert.Equal(t, "thesis.docx", rep.Document)
	assert.Equal(t, "1 Introduction", rep.Title)
	assert.False(t, rep.StartedAt.IsZero())
}

func TestRunnerParallelKeepsValidatorOrder(t *testing.T) {
	var validators []validation.Validator
	for i := 0; i < 8; i++ {
		validators = append(validators, passing(fmt.Sprintf("check-%d", i)))
	}
	runner := NewRunner(validators, WithParallelism(4))

	rep, err := runner.Run(context.Background(), usableDoc())
	require.NoError(t, err)

	require.Len(t, rep.Results, 8)
	for i, res := range rep.Results {
		assert.Equal(t, fmt.Sprintf("check-%d", i), res.Validator())
	}
}

func TestRunnerFailFastStopsAtFirstFailure(t *testing.T) {
	runner := NewRunner(
		[]validation.Validator{passing("a"), failing("b"), passing("c")},
		WithFailFast(),
	)

	rep, err := runner.Run(context.Background(), usableDoc())
	require.NoError(t, err)

	require.Len(t, rep.Results, 2)
	assert.Equal(t, validation.StatusFail, rep.Overall())
}

func TestRunnerAbortsOnCheckError(t *testing.T) {
	runner := NewRunner([]validation.Validator{passing("a"), erroring("b")})

	_, err := runner.Run(context.Background(), usableDoc())

	var checkErr *validation.CheckError
	require.ErrorAs(t, err, &checkErr)
	assert.Equal(t, "b", checkErr.Validator)
}

func TestRunnerContinueOnErrorRecordsErrorResult(t *testing.T) {
	runner := NewRunner(
		[]validation.Validator{passing("a"), erroring("b"), passing("c")},
		WithContinueOnError(),
	)

	rep, err := runner.Run(context.Background(), usableDoc())
	require.NoError(t, err)

	require.Len(t, rep.Results, 3)
	assert.Equal(t, validation.StatusError, rep.Results[1].Status())
	assert.True(t, rep.HasErrors())
	assert.Equal(t, validation.StatusWarning, rep.Overall())
}

func TestRunnerHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runner := NewRunner([]validation.Validator{passing("a")})

	_, err := runner.Run(ctx, usableDoc())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerRecordsSkippedValidators(t *testing.T) {
	disabled := passing("disabled-check")
	disabled.SetEnabled(false)
	runner := NewRunner([]validation.Validator{disabled, passing("live-check")})

	rep, err := runner.Run(context.Background(), usableDoc())
	require.NoError(t, err)

	res, ok := rep.Result("disabled-check")
	require.True(t, ok)
	assert.Equal(t, validation.StatusSkip, res.Status())
	assert.Equal(t, validation.StatusPass, rep.Overall())
}

func TestReportOverallRollup(t *testing.T) {
	issueOf := func(severity validation.Severity) []validation.Issue {
		return []validation.Issue{validation.MustIssue("loc", "want", "got", severity)}
	}
	tests := []struct {
		name    string
		results []validation.Result
		overall validation.Status
	}{
		{"all pass", []validation.Result{validation.Pass("a"), validation.Pass("b")}, validation.StatusPass},
		{"warning wins over pass", []validation.Result{validation.Pass("a"), validation.Warning("b", issueOf(validation.Minor))}, validation.StatusWarning},
		{"fail wins over warning", []validation.Result{validation.Warning("a", issueOf(validation.Minor)), validation.Fail("b", issueOf(validation.Major))}, validation.StatusFail},
		{"error degrades to warning", []validation.Result{validation.Pass("a"), validation.Error("b", "boom")}, validation.StatusWarning},
		{"skips carry no signal", []validation.Result{validation.Skip("a", "disabled"), validation.Skip("b", "disabled")}, validation.StatusPass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := &Report{Results: tt.results}
			assert.Equal(t, tt.overall, rep.Overall())
		})
	}
}

func TestReportIssueAccounting(t *testing.T) {
	rep := &Report{Results: []validation.Result{
		validation.Fail("a", []validation.Issue{
			validation.MustIssue("one", "want", "got", validation.Critical),
			validation.MustIssue("two", "want", "got", validation.Minor),
		}),
		validation.Warning("b", []validation.Issue{
			validation.MustIssue("three", "want", "got", validation.Minor),
		}),
		validation.Pass("c"),
	}}

	assert.Equal(t, 3, rep.TotalIssues())
	counts := rep.IssuesBySeverity()
	assert.Equal(t, 1, counts[validation.Critical])
	assert.Equal(t, 2, counts[validation.Minor])
	assert.Zero(t, counts[validation.Major])
}

func TestReportResultLookup(t *testing.T) {
	rep := &Report{Results: []validation.Result{validation.Pass("margin")}}

	res, ok := rep.Result("margin")
	require.True(t, ok)
	assert.Equal(t, "margin", res.Validator())

	_, ok = rep.Result("unknown")
	assert.False(t, ok)
}

func TestReportJSONCarriesOverallVerdict(t *testing.T) {
	rep := &Report{
		ID: uuid.New(),
		Results: []validation.Result{
			validation.Fail("margin", []validation.Issue{
				validation.MustIssue("left margin", "2.5 cm", "1.5 cm", validation.Critical),
			}),
		},
	}

	data, err := json.Marshal(rep)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "fail", decoded["overall"])
	assert.Equal(t, float64(1), decoded["total_issues"])
}
