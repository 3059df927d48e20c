package types

import "fmt"

// Result is the universal outcome type for fallible survey and organizer
// operations: a success flag plus a human-readable detail message.
//
// Validation failures are expected and frequent during intake, so they are
// surfaced as failed Results rather than errors; concurrent workers inspect
// the flag without unwinding control flow.
type Result struct {
	// Success reports whether the operation succeeded.
	Success bool

	// Message is a human-readable description of the outcome. Empty on
	// success unless the operation has something to report.
	Message string
}

// OK returns a successful Result with an optional message.
func OK(msg string) Result {
	return Result{Success: true, Message: msg}
}

// Failure returns a failed Result carrying the given message.
func Failure(msg string) Result {
	return Result{Success: false, Message: msg}
}

// Failuref returns a failed Result with a formatted message.
func Failuref(format string, args ...any) Result {
	return Result{Success: false, Message: fmt.Sprintf(format, args...)}
}
