package errors

import (
	"fmt"
	"strings"
)

// Format returns a multi-line human-readable rendering of the error,
// including detail, suggestion, and documentation link when present.
func (e *ReflowError) Format() string {
	var b strings.Builder

	if e.Code != "" {
		fmt.Fprintf(&b, "ERROR %s: %s\n", e.Code, e.Message)
	} else {
		fmt.Fprintf(&b, "ERROR: %s\n", e.Message)
	}

	if e.Detail != "" {
		fmt.Fprintf(&b, "\n  %s\n", e.Detail)
	}

	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  Suggestion: %s\n", e.Suggestion)
	}

	if e.Wrapped != nil {
		fmt.Fprintf(&b, "\n  Caused by: %v\n", e.Wrapped)
	}

	if e.DocURL != "" {
		fmt.Fprintf(&b, "\n  Docs: %s\n", e.DocURL)
	}

	return b.String()
}
