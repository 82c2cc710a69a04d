package cli

import "errors"

// ErrUsage marks errors caused by bad invocations rather than failed work;
// main prints them without a stack and exits 1.
var ErrUsage = errors.New("cli usage error")

// usageError pairs the user-facing message with an optional underlying
// cause, so command code can surface a readable line while errors.As still
// reaches the original failure.
type usageError struct {
	msg   string
	cause error
}

func newUsageError(msg string) error {
	return usageError{msg: msg}
}

// wrapUsageError presents msg to the user and keeps cause on the chain.
func wrapUsageError(cause error, msg string) error {
	return usageError{msg: msg, cause: cause}
}

func (e usageError) Error() string { return e.msg }

func (e usageError) Is(target error) bool { return target == ErrUsage }

func (e usageError) Unwrap() error { return e.cause }
