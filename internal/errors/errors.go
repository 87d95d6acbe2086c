package errors

import (
	"fmt"
	"os"

	"github.com/julianstephens/teetime/internal/logger"
)

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

// Hint returns a follow-up suggestion for errors of a known kind, or "".
func Hint(err error) string {
	switch KindOf(err) {
	case KindFetchFailure:
		return "Check your network connection and the --api-url setting."
	case KindInvalidLink:
		return "Request a new link with 'teetime link request <email>'."
	case KindValidationFailure:
		return "Fix the fields above and try again."
	case KindInvalidTimeFormat:
		return "Times look like 8:00am or 14:30."
	case KindInvalidDateFormat:
		return "Dates look like 2026-06-19 (or 6/19 for season boundaries)."
	}
	return ""
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err, "kind", KindOf(err))
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		if hint := Hint(err); hint != "" {
			fmt.Fprintf(os.Stderr, "       %s\n", hint)
		}
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
