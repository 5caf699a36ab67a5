package validation

import (
	"encoding/json"
	"fmt"
	"time"
)

// Result is the immutable outcome of one check run: a status, the issues
// found, and timing metadata. Construct results through the factory
// functions; they keep the status/issue-list invariant (issues are non-empty
// exactly when the status is FAIL or WARNING) impossible to violate.
type Result struct {
	status    Status
	validator string
	issues    []Issue
	timestamp time.Time
	duration  time.Duration
	message   string
}

// Pass returns a PASS result with no issues.
func Pass(validator string) Result {
	return Result{status: StatusPass, validator: validator, timestamp: time.Now()}
}

// Fail returns a FAIL result carrying the given issues. An empty issue list
// degrades to PASS, since a failure must be explained by at least one issue.
func Fail(validator string, issues []Issue) Result {
	if len(issues) == 0 {
		return Pass(validator)
	}
	return Result{status: StatusFail, validator: validator, issues: copyIssues(issues), timestamp: time.Now()}
}

// Warning returns a WARNING result carrying the given issues. An empty issue
// list degrades to PASS.
func Warning(validator string, issues []Issue) Result {
	if len(issues) == 0 {
		return Pass(validator)
	}
	return Result{status: StatusWarning, validator: validator, issues: copyIssues(issues), timestamp: time.Now()}
}

// Error returns an ERROR result for a check that could not complete.
func Error(validator, message string) Result {
	return Result{status: StatusError, validator: validator, message: message, timestamp: time.Now()}
}

// Skip returns a SKIP result for a check that was intentionally bypassed.
func Skip(validator, reason string) Result {
	return Result{status: StatusSkip, validator: validator, message: reason, timestamp: time.Now()}
}

// ForIssues derives the status from the issues found: no issues is PASS, any
// major or critical issue is FAIL, anything else is WARNING. Every check
// uses this rollup so pass/fail semantics stay uniform.
func ForIssues(validator string, issues []Issue) Result {
	if len(issues) == 0 {
		return Pass(validator)
	}
	for _, issue := range issues {
		if issue.Severity.RequiresAction() {
			return Fail(validator, issues)
		}
	}
	return Warning(validator, issues)
}

// WithProcessingTime returns a copy of the result with the duration
// attached; all other fields are unchanged.
func (r Result) WithProcessingTime(d time.Duration) Result {
	r.duration = d
	return r
}

// Status returns the result status.
func (r Result) Status() Status { return r.status }

// Validator returns the name of the check that produced the result.
func (r Result) Validator() string { return r.validator }

// Issues returns a copy of the issues found, in the order they were raised.
func (r Result) Issues() []Issue { return copyIssues(r.issues) }

// IssueCount returns the number of issues found.
func (r Result) IssueCount() int { return len(r.issues) }

// Timestamp returns when the result was created.
func (r Result) Timestamp() time.Time { return r.timestamp }

// ProcessingTime returns how long the check ran, when attached.
func (r Result) ProcessingTime() time.Duration { return r.duration }

// ErrorMessage returns the error or skip reason for ERROR and SKIP results.
func (r Result) ErrorMessage() string { return r.message }

// HasIssues reports whether the result represents any kind of problem:
// true for FAIL, WARNING and ERROR.
func (r Result) HasIssues() bool {
	return r.status == StatusFail || r.status == StatusWarning || r.status == StatusError
}

// Successful reports whether the document passes this check, possibly with
// warnings.
func (r Result) Successful() bool {
	return r.status.Successful()
}

// CountBySeverity returns how many issues carry the given severity.
func (r Result) CountBySeverity(s Severity) int {
	count := 0
	for _, issue := range r.issues {
		if issue.Severity == s {
			count++
		}
	}
	return count
}

// HighestSeverity returns the most severe issue severity and true, or false
// when the result has no issues.
func (r Result) HighestSeverity() (Severity, bool) {
	if len(r.issues) == 0 {
		return 0, false
	}
	highest := r.issues[0].Severity
	for _, issue := range r.issues[1:] {
		if issue.Severity > highest {
			highest = issue.Severity
		}
	}
	return highest, true
}

// Message returns a human-readable description of the outcome.
func (r Result) Message() string {
	switch r.status {
	case StatusPass:
		return "validation passed, no issues found"
	case StatusWarning:
		return fmt.Sprintf("validation completed with %d warning(s)", len(r.issues))
	case StatusFail:
		return fmt.Sprintf("validation failed with %d issue(s)", len(r.issues))
	case StatusError:
		if r.message != "" {
			return r.message
		}
		return "validation error occurred"
	case StatusSkip:
		if r.message != "" {
			return "skipped: " + r.message
		}
		return "validation was skipped"
	default:
		return "unknown validation status"
	}
}

func (r Result) String() string {
	return fmt.Sprintf("Result{status=%s, validator=%q, issues=%d, time=%s}",
		r.status, r.validator, len(r.issues), r.duration)
}

// MarshalJSON exposes the result for report serialization while keeping the
// struct fields themselves unexported.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Status     Status    `json:"status"`
		Validator  string    `json:"validator"`
		Issues     []Issue   `json:"issues,omitempty"`
		Timestamp  time.Time `json:"timestamp"`
		DurationMs float64   `json:"duration_ms"`
		Message    string    `json:"message,omitempty"`
	}{
		Status:     r.status,
		Validator:  r.validator,
		Issues:     copyIssues(r.issues),
		Timestamp:  r.timestamp,
		DurationMs: float64(r.duration.Microseconds()) / 1000.0,
		Message:    r.message,
	})
}

func copyIssues(issues []Issue) []Issue {
	if len(issues) == 0 {
		return nil
	}
	out := make([]Issue, len(issues))
	copy(out, issues)
	return out
}
