// Package validation defines the core model shared by every formatting
// check: severity and status enumerations, issue and result records, the
// validator contract, and the execution template that runs a check.
package validation

// Severity ranks how important a single validation issue is. The set is
// closed; ordering is ascending so the highest severity wins in rollups.
type Severity int

const (
	Info Severity = iota
	Minor
	Major
	Critical
)

// String returns the display name of the severity.
func (s Severity) String() string {
	switch s {
	case Critical:
		return "critical"
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so severities render as
// their names in JSON output and map keys.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ActionText describes what a finding of this severity asks of the author.
func (s Severity) ActionText() string {
	switch s {
	case Critical:
		return "must be fixed"
	case Major:
		return "should be fixed"
	case Minor:
		return "recommended to fix"
	default:
		return "for information only"
	}
}

// RequiresAction reports whether the severity demands a fix before the
// document can be considered compliant.
func (s Severity) RequiresAction() bool {
	return s == Critical || s == Major
}

// Blocking reports whether the severity alone blocks document acceptance.
func (s Severity) Blocking() bool {
	return s == Critical
}

// Severities lists all severity values from most to least severe.
func Severities() []Severity {
	return []Severity{Critical, Major, Minor, Info}
}
