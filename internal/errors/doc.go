// Package errors provides structured, actionable error values for Reflow.
//
// Each error has a stable code (e.g., "E001") mapping to a category, a
// short message, a detailed explanation, and a documentation URL. Usage
// errors are reported through the renderer's diagnostics hook and never
// abort execution; protocol errors are returned to callers.
//
//	err := errors.New("E001").
//	    WithSuggestion("Call OnMounted from inside your component's Setup")
//	fmt.Println(err.Format())
package errors
