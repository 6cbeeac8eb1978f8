package triage

import (
	"fmt"
)

// ModelInitializationError reports a failed first construction of the
// classifier. The classifier stays uninitialized, so a later call may succeed.
type ModelInitializationError struct {
	Err error
}

func (e *ModelInitializationError) Error() string {
	return fmt.Sprintf("model initialization failed: %v", e.Err)
}

func (e *ModelInitializationError) Unwrap() error {
	return e.Err
}

// MissingFeeScheduleError reports a condition without a fee schedule.
type MissingFeeScheduleError struct {
	Condition string
}

func (e *MissingFeeScheduleError) Error() string {
	return fmt.Sprintf("no fee schedule for condition %q", e.Condition)
}

// AnalysisError is the only error kind Analyze returns to callers.
type AnalysisError struct {
	Stage string
	Err   error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("symptom analysis failed at %s: %v", e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}
