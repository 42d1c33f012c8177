package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestFailureKindOf(t *testing.T) {
	genErr := &GenerationError{Kind: FailureTimeout, Detail: "budget exhausted"}

	kind, ok := FailureKindOf(genErr)
	if !ok || kind != FailureTimeout {
		t.Errorf("expected timeout kind, got %v (%v)", kind, ok)
	}

	wrapped := fmt.Errorf("generate: %w", genErr)
	kind, ok = FailureKindOf(wrapped)
	if !ok || kind != FailureTimeout {
		t.Errorf("wrapped error must still classify, got %v (%v)", kind, ok)
	}

	if _, ok := FailureKindOf(errors.New("plain")); ok {
		t.Error("plain errors must not classify")
	}
}

func TestGenerationError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	genErr := &GenerationError{Kind: FailureSubmission, Detail: cause.Error(), Err: cause}

	if !errors.Is(genErr, cause) {
		t.Error("GenerationError must unwrap to its cause")
	}
	if genErr.Error() == "" {
		t.Error("error text must not be empty")
	}
}
