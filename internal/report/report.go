// Package report runs a set of validators against a document and aggregates
// their results into a single report with an overall verdict.
package report

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/matejk/thesischeck/internal/validation"
)

// Report is the outcome of one full check run. Results keep the execution
// order of the validators that produced them.
type Report struct {
	ID        uuid.UUID           `json:"id"`
	Document  string              `json:"document"`
	Title     string              `json:"title,omitempty"`
	StartedAt time.Time           `json:"started_at"`
	Duration  time.Duration       `json:"-"`
	Results   []validation.Result `json:"results"`
}

// Result returns the result produced by the named validator.
func (r *Report) Result(name string) (validation.Result, bool) {
	for _, res := range r.Results {
		if res.Validator() == name {
			return res, true
		}
	}
	return validation.Result{}, false
}

// Overall rolls the per-check statuses up to one verdict: any FAIL makes the
// report FAIL; otherwise any WARNING or ERROR makes it WARNING; otherwise
// PASS. Skipped checks carry no signal and are ignored.
func (r *Report) Overall() validation.Status {
	overall := validation.StatusPass
	for _, res := range r.Results {
		switch res.Status() {
		case validation.StatusFail:
			return validation.StatusFail
		case validation.StatusWarning, validation.StatusError:
			overall = validation.StatusWarning
		}
	}
	return overall
}

// Successful reports whether the document is acceptable, possibly with
// warnings.
func (r *Report) Successful() bool {
	return r.Overall() != validation.StatusFail
}

// HasErrors reports whether any check ended in an ERROR result.
func (r *Report) HasErrors() bool {
	for _, res := range r.Results {
		if res.Status() == validation.StatusError {
			return true
		}
	}
	return false
}

// TotalIssues counts the issues across all checks.
func (r *Report) TotalIssues() int {
	total := 0
	for _, res := range r.Results {
		total += res.IssueCount()
	}
	return total
}

// IssuesBySeverity counts issues across all checks, keyed by severity.
func (r *Report) IssuesBySeverity() map[validation.Severity]int {
	counts := make(map[validation.Severity]int)
	for _, res := range r.Results {
		for _, issue := range res.Issues() {
			counts[issue.Severity]++
		}
	}
	return counts
}

// MarshalJSON adds the overall verdict and duration to the serialized form.
func (r *Report) MarshalJSON() ([]byte, error) {
	type alias Report
	return json.Marshal(struct {
		*alias
		Overall    validation.Status `json:"overall"`
		DurationMs int64             `json:"duration_ms"`
		Issues     int               `json:"total_issues"`
	}{
		alias:      (*alias)(r),
		Overall:    r.Overall(),
		DurationMs: r.Duration.Milliseconds(),
		Issues:     r.TotalIssues(),
	})
}
