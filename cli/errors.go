package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bent101/wordle-matches/constraint"
	"github.com/bent101/wordle-matches/feedback"
	"github.com/bent101/wordle-matches/wordlist"
)

// ExitCode is the process exit status for a class of failure.
type ExitCode int

const (
	ExitOK            ExitCode = 0
	ExitGeneral       ExitCode = 1
	ExitUsage         ExitCode = 2
	ExitInput         ExitCode = 3
	ExitContradiction ExitCode = 4
	ExitMissing       ExitCode = 5
)

// ExitError is an error with a specific exit code.
type ExitError struct {
	Code ExitCode
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

func usageError(format string, args ...any) error {
	return &ExitError{Code: ExitUsage, Err: fmt.Errorf(format, args...)}
}

// usageArgs reports argument count errors as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &ExitError{Code: ExitUsage, Err: err}
		}
		return nil
	}
}

// exitCode classifies err by the sentinel errors it wraps.
func exitCode(err error) ExitCode {
	var exitErr *ExitError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, feedback.ErrInvalidWord), errors.Is(err, feedback.ErrInvalidFeedback):
		return ExitInput
	case errors.Is(err, constraint.ErrContradiction):
		return ExitContradiction
	case errors.Is(err, wordlist.ErrMissing):
		return ExitMissing
	}
	return ExitGeneral
}
