package app

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Pipeline stages reported by StageError.
const (
	StageLoad    = "load"
	StageBuild   = "build"
	StageInstall = "install"
)

// StageError records which pipeline stage failed and on what input.
type StageError struct {
	Stage  string // Pipeline stage (e.g., "load", "install")
	Target string // File the stage worked on, if any
	Err    error  // Underlying error
}

// NewStageError creates a new StageError.
func NewStageError(stage, target string, err error) *StageError {
	return &StageError{
		Stage:  stage,
		Target: target,
		Err:    err,
	}
}

func (e *StageError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Stage
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Stage, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *StageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches both the wrapper itself and the wrapped error.
func (e *StageError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*StageError); ok {
		return e == t
	}
	return errors.Is(e.Err, target)
}

// StageOf returns the failed stage recorded in err, or "".
func StageOf(err error) string {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
