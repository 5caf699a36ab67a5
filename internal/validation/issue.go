package validation

import "fmt"

// Issue describes one concrete deviation from a formatting rule: where it
// was found, what the rule expects, and what the document actually contains.
// Location, Expected, Actual and Severity are mandatory; Suggestion is an
// optional hint on how to fix the deviation.
type Issue struct {
	Location   string   `json:"location"`
	Expected   string   `json:"expected"`
	Actual     string   `json:"actual"`
	Severity   Severity `json:"severity"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// NewIssue constructs an Issue, failing fast when a mandatory field is
// missing. Severity is always one of the closed Severity values, so only the
// three string fields need checking.
func NewIssue(location, expected, actual string, severity Severity) (Issue, error) {
	switch {
	case location == "":
		return Issue{}, fmt.Errorf("issue: location is required")
	case expected == "":
		return Issue{}, fmt.Errorf("issue: expected value is required")
	case actual == "":
		return Issue{}, fmt.Errorf("issue: actual value is required")
	}
	return Issue{Location: location, Expected: expected, Actual: actual, Severity: severity}, nil
}

// MustIssue is like NewIssue but panics on a missing mandatory field. Checks
// use it for issues whose fields are statically known to be present; a panic
// escaping rule logic is normalized by the Run template into a CheckError.
func MustIssue(location, expected, actual string, severity Severity) Issue {
	issue, err := NewIssue(location, expected, actual, severity)
	if err != nil {
		panic(err)
	}
	return issue
}

// WithSuggestion returns a copy of the issue carrying a fix suggestion.
func (i Issue) WithSuggestion(suggestion string) Issue {
	i.Suggestion = suggestion
	return i
}

// Equal reports whether two issues describe the same deviation. Equality is
// defined over the four mandatory fields only, so duplicate detection is
// independent of suggestions.
func (i Issue) Equal(other Issue) bool {
	return i.Location == other.Location &&
		i.Expected == other.Expected &&
		i.Actual == other.Actual &&
		i.Severity == other.Severity
}

// Summary returns a one-line human-readable description of the issue.
func (i Issue) Summary() string {
	return fmt.Sprintf("%s: expected %s, found %s", i.Location, i.Expected, i.Actual)
}
