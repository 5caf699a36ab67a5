package validation

import "fmt"

// CheckError is the single structured failure kind a check run can raise:
// either the pre-check rejected the document, or rule logic failed
// unexpectedly. It always carries the originating check's name and a
// severity (CRITICAL unless set otherwise).
type CheckError struct {
	Validator string
	Severity  Severity
	Message   string
	Cause     error
}

func (e *CheckError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("check %q failed: %s: %v", e.Validator, e.Message, e.Cause)
	}
	return fmt.Sprintf("check %q failed: %s", e.Validator, e.Message)
}

func (e *CheckError) Unwrap() error {
	return e.Cause
}

// ToResult converts the failure into an ERROR result for callers that want
// to record it in a report instead of propagating it.
func (e *CheckError) ToResult() Result {
	return Error(e.Validator, e.Message)
}

// AsCheckError returns err as a *CheckError, wrapping it under the given
// validator name with CRITICAL severity when it is not one already.
func AsCheckError(validator string, err error) *CheckError {
	return newCheckError(validator, err)
}

// newCheckError wraps err into a CheckError unless it already is one.
func newCheckError(validator string, err error) *CheckError {
	if ce, ok := err.(*CheckError); ok {
		return ce
	}
	return &CheckError{
		Validator: validator,
		Severity:  Critical,
		Message:   err.Error(),
		Cause:     err,
	}
}
