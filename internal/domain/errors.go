package domain

import (
	"errors"
	"fmt"
)

var (
	ErrGenerationInFlight = errors.New("generation already in flight")
	ErrSessionNotFound    = errors.New("session not found")
)

// FailureKind classifies why a generation call failed, so callers can
// branch on the cause (e.g. timeout-specific retry messaging).
type FailureKind int

const (
	FailureSubmission FailureKind = iota
	FailureRemoteTask
	FailureProtocol
	FailureTimeout
)

func (k FailureKind) String() string {
	switch k {
	case FailureSubmission:
		return "submission"
	case FailureRemoteTask:
		return "remote_task"
	case FailureProtocol:
		return "protocol"
	case FailureTimeout:
		return "timeout"
	}
	return "unknown"
}

// GenerationError is the terminal failure outcome of one generation call.
type GenerationError struct {
	Kind   FailureKind
	Detail string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("generation failed (%s): %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("generation failed (%s)", e.Kind)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// FailureKindOf extracts the failure kind from err, or ok=false when err
// is not a classified generation failure.
func FailureKindOf(err error) (FailureKind, bool) {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind, true
	}
	return 0, false
}
