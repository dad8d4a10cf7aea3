package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Render Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryRender,
		Message:  "Render function panicked",
	},
	"E002": {
		Category: CategoryRender,
		Message:  "Render function returned no node",
		Detail:   "A composite must render exactly one element, text or composite node.",
	},
	"E003": {
		Category: CategoryRender,
		Message:  "Recursive composite expansion",
		Detail:   "A composite rendered itself, directly or through other composites, so its leaf tree can never be completed.",
	},
	"E008": {
		Category: CategoryRender,
		Message:  "Invalid child",
		Detail:   "Children must be nodes, strings, nil or slices of those.",
	},
	"E009": {
		Category: CategoryRender,
		Message:  "Invalid element type",
		Detail:   "The first argument to CreateElement must be a tag name or a composite factory.",
	},

	// ============================================
	// Mount Errors (E004-E006)
	// ============================================

	"E004": {
		Category: CategoryMount,
		Message:  "Composite is not mounted",
		Detail:   "Update was requested for a composite that has no occupied range.",
	},
	"E005": {
		Category: CategoryMount,
		Message:  "Re-entrant update",
		Detail:   "An update was requested while a mount or update pass was running. Call SetState from event handlers, not from Render.",
	},
	"E006": {
		Category: CategoryMount,
		Message:  "Unknown node variant",
	},

	// ============================================
	// Host Errors (E007)
	// ============================================

	"E007": {
		Category: CategoryHost,
		Message:  "Invalid host container",
	},

	// ============================================
	// Config Errors (E120-E141)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},
	"E141": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
	},

	// ============================================
	// CLI Errors (E160)
	// ============================================

	"E160": {
		Category: CategoryCLI,
		Message:  "Unknown demo view",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
