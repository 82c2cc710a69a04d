package cli

import (
	"errors"
	"fmt"
	"testing"
)

func TestUsageErrorMatchesSentinel(t *testing.T) {
	t.Parallel()

	err := newUsageError("bad flag")
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("newUsageError must match ErrUsage, got %v", err)
	}
	if err.Error() != "bad flag" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestWrapUsageErrorKeepsCause(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("line 12: unexpected key")
	err := wrapUsageError(cause, "parse config file")

	if !errors.Is(err, ErrUsage) {
		t.Fatalf("wrapped error must still match ErrUsage, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("cause must stay reachable on the chain: %v", err)
	}
	if err.Error() != "parse config file" {
		t.Errorf("user-facing message = %q", err.Error())
	}
}
