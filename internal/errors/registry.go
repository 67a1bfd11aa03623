package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Usage Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryUsage,
		Message:  "OnMounted called outside setup",
		Detail:   "OnMounted registers a callback on the component currently running its Setup function. Outside that window there is no component to attach to; the call is ignored.",
		DocURL:   "https://reflow-ui.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryUsage,
		Message:  "Write to undeclared render-context key",
		Detail:   "The render context resolves writes across data state, props, and setup state. The key exists in none of them, so the write is refused.",
		DocURL:   "https://reflow-ui.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryUsage,
		Message:  "Write to prop rejected",
		Detail:   "Props flow from the parent; components must not write them. Emit an event and let the parent update the prop instead.",
		DocURL:   "https://reflow-ui.dev/docs/errors/E003",
	},
	"E004": {
		Category: CategoryUsage,
		Message:  "Read of unknown render-context key",
		Detail:   "The key was found in neither data state, props, nor setup state. The read resolves to nil.",
		DocURL:   "https://reflow-ui.dev/docs/errors/E004",
	},
	"E005": {
		Category: CategoryUsage,
		Message:  "Write to readonly props",
		Detail:   "The props view handed to Setup is read-only.",
		DocURL:   "https://reflow-ui.dev/docs/errors/E005",
	},

	// ============================================
	// Runtime Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategoryRuntime,
		Message:  "Component has no render function",
		Detail:   "Neither the definition's Render field nor the value returned from Setup provides a render function.",
		DocURL:   "https://reflow-ui.dev/docs/errors/E020",
	},
	"E021": {
		Category: CategoryRuntime,
		Message:  "Teardown failed for child node",
		Detail:   "A child raised during unmount. Remaining siblings were still torn down.",
		DocURL:   "https://reflow-ui.dev/docs/errors/E021",
	},
	"E022": {
		Category: CategoryRuntime,
		Message:  "Emit handler is not callable",
		Detail:   "The prop matching the emitted event exists but is not a function.",
		DocURL:   "https://reflow-ui.dev/docs/errors/E022",
	},

	// ============================================
	// Validation Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategoryValidation,
		Message:  "Duplicate sibling key",
		Detail:   "Two children of the same parent share a non-empty key. Keyed reconciliation requires keys to be unique among siblings.",
		DocURL:   "https://reflow-ui.dev/docs/errors/E040",
	},

	// ============================================
	// Protocol Errors (E060-E079)
	// ============================================

	"E060": {
		Category: CategoryProtocol,
		Message:  "Malformed mutation frame",
		Detail:   "The binary frame could not be decoded. The connection should be dropped.",
		DocURL:   "https://reflow-ui.dev/docs/errors/E060",
	},
	"E061": {
		Category: CategoryProtocol,
		Message:  "Unknown node reference",
		Detail:   "A mutation referenced a node ID that was never created on this side.",
		DocURL:   "https://reflow-ui.dev/docs/errors/E061",
	},
}
