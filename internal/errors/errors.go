package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/ghpulse/internal/logger"
)

var (
	// ErrEmptyInput is returned for a blank username. Callers ignore it silently.
	ErrEmptyInput = stderrors.New("empty username")

	// ErrEmptyDataset is an input-contract violation: layout and summary need at least one record
	ErrEmptyDataset = stderrors.New("activity dataset is empty")

	// ErrTotalMismatch means a dataset's precomputed total disagrees with its records
	ErrTotalMismatch = stderrors.New("activity dataset total does not match records")

	// ErrInvalidRange is returned when a date range ends before it starts
	ErrInvalidRange = stderrors.New("invalid date range")
)

// Is and As re-export the standard helpers so callers only import this package
func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

func New(text string) error { return stderrors.New(text) }

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// LookupMessage renders the user-facing message for a failed profile lookup
func LookupMessage(err error) string {
	if err == nil {
		return ""
	}
	reason := strings.TrimSuffix(err.Error(), ".")
	return Formatf("%s. Please check the username and try again.", reason)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
