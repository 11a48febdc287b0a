package domain

import "fmt"

// Build phases used in BuildError.Phase.
const (
	PhaseConfig   = "config"
	PhaseScan     = "scan"
	PhaseRead     = "read"
	PhaseTemplate = "template"
	PhaseWrite    = "write"
)

// BuildError is the error type for everything the site builder reports.
type BuildError struct {
	Phase   string // "config", "scan", "read", "template", "write"
	File    string
	Message string
	Cause   error
}

func (e *BuildError) Error() string {
	s := fmt.Sprintf("[%s]", e.Phase)
	if e.File != "" {
		s += fmt.Sprintf(" %s", e.File)
	}
	s += fmt.Sprintf(": %s", e.Message)
	if e.Cause != nil {
		s += fmt.Sprintf(": %v", e.Cause)
	}
	return s
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}

// NewError creates a new BuildError.
func NewError(phase, file, message string, cause error) *BuildError {
	return &BuildError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}
