package validation

// Status is the overall outcome of one check run. The set is closed.
type Status int

const (
	// Pass means the check completed and found no issues.
	StatusPass Status = iota
	// StatusWarning means issues were found but none of them major or critical.
	StatusWarning
	// StatusFail means at least one major or critical issue was found.
	StatusFail
	// StatusError means the check could not complete.
	StatusError
	// StatusSkip means the check was intentionally bypassed.
	StatusSkip
)

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarning:
		return "warning"
	case StatusFail:
		return "fail"
	case StatusError:
		return "error"
	case StatusSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler for JSON output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Successful reports whether the check outcome allows the document through:
// true for PASS and WARNING.
func (s Status) Successful() bool {
	return s == StatusPass || s == StatusWarning
}

// Failure reports whether the outcome is a hard failure: true for FAIL and
// ERROR.
func (s Status) Failure() bool {
	return s == StatusFail || s == StatusError
}
