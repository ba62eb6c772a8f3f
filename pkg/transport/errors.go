package transport

import (
	"fmt"
	"strings"
)

// WriterError is the failure of one writer in a fan-out.
type WriterError struct {
	Index int
	Err   error
}

// Error implements error.
func (e *WriterError) Error() string {
	return fmt.Sprintf("writer %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e *WriterError) Unwrap() error { return e.Err }

// AggregatedError collects the failures of a fan-out.
type AggregatedError struct {
	Errors []error
}

// Error implements error.
func (e *AggregatedError) Error() string {
	strs := make([]string, len(e.Errors))
	for n, err := range e.Errors {
		strs[n] = err.Error()
	}
	return fmt.Sprintf("%d writers failed: %s", len(e.Errors), strings.Join(strs, "; "))
}

// Unwrap supports errors.Is and errors.As on all collected errors.
func (e *AggregatedError) Unwrap() []error { return e.Errors }

// Add records the result of writer index. nil is skipped.
func (e *AggregatedError) Add(index int, err error) {
	if err != nil {
		e.Errors = append(e.Errors, &WriterError{Index: index, Err: err})
	}
}

// Aggregate returns nil without failures, the single failure itself,
// or the AggregatedError.
func (e *AggregatedError) Aggregate() error {
	switch len(e.Errors) {
	case 0:
		return nil
	case 1:
		return e.Errors[0]
	}
	return e
}
