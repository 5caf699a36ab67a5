package validation

import (
	"fmt"
	"time"

	"github.com/matejk/thesischeck/internal/document"
)

// Validator is implemented by every formatting check. A validator is
// stateless across invocations (construction-time configuration only) and is
// identified by its name, which keys the report.
//
// Check holds only the rule logic; callers invoke a validator through Run,
// which wraps Check in the shared execution template.
type Validator interface {
	Name() string
	DefaultSeverity() Severity
	Description() string
	Enabled() bool
	Check(doc *document.Document) (Result, error)
}

// PreChecker lets a validator replace the default pre-check, which rejects
// documents judged empty by document.Document.IsEmpty.
type PreChecker interface {
	PreCheck(doc *document.Document) error
}

// PostChecker lets a validator enrich or filter its raw result before timing
// is attached.
type PostChecker interface {
	PostCheck(res Result) Result
}

// Run executes a validator against a document using the fixed template every
// check shares:
//
//  1. a disabled validator short-circuits to SKIP,
//  2. the pre-check rejects unusable input,
//  3. the rule logic produces a raw result,
//  4. the post-check hook may adjust it,
//  5. elapsed wall time is attached.
//
// Every failure in steps 2-4, including panics escaping rule logic, is
// normalized to a *CheckError carrying the validator's name, so callers
// never need check-specific error handling.
func Run(v Validator, doc *document.Document) (res Result, err error) {
	if !v.Enabled() {
		return Skip(v.Name(), "validator disabled"), nil
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res = Result{}
			err = &CheckError{
				Validator: v.Name(),
				Severity:  Critical,
				Message:   fmt.Sprintf("unexpected panic during validation: %v", r),
			}
		}
	}()

	if err := preCheck(v, doc); err != nil {
		return Result{}, newCheckError(v.Name(), err)
	}

	res, err = v.Check(doc)
	if err != nil {
		return Result{}, newCheckError(v.Name(), err)
	}

	if pc, ok := v.(PostChecker); ok {
		res = pc.PostCheck(res)
	}

	return res.WithProcessingTime(time.Since(start)), nil
}

func preCheck(v Validator, doc *document.Document) error {
	if pc, ok := v.(PreChecker); ok {
		return pc.PreCheck(doc)
	}
	if doc == nil {
		return fmt.Errorf("document is nil")
	}
	if doc.IsEmpty() {
		return fmt.Errorf("document appears to be empty or has insufficient content")
	}
	return nil
}

// Base carries the identifying attributes shared by all validators. Embed it
// by value and construct it with NewBase; the enclosing check then only
// implements Check and optional hooks.
type Base struct {
	name        string
	severity    Severity
	description string
	enabled     bool
}

// NewBase returns an enabled Base with the given identity.
func NewBase(name string, severity Severity, description string) Base {
	return Base{name: name, severity: severity, description: description, enabled: true}
}

// Name returns the validator name used as the report key.
func (b *Base) Name() string { return b.name }

// DefaultSeverity returns the fallback severity for issues this validator
// raises.
func (b *Base) DefaultSeverity() Severity { return b.severity }

// Description returns a short description of what the validator checks.
func (b *Base) Description() string { return b.description }

// Enabled reports whether the validator should run.
func (b *Base) Enabled() bool { return b.enabled }

// SetEnabled enables or disables the validator.
func (b *Base) SetEnabled(enabled bool) { b.enabled = enabled }
