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
	// Anchor Errors (T001-T009)
	// ============================================

	"T001": {
		Category: CategoryAnchor,
		Message:  "Invalid anchor",
		Detail:   "A tooltip needs an element to attach to. The anchor passed to Create was nil.",
	},
	"T002": {
		Category: CategoryAnchor,
		Message:  "Anchor is not visible",
		Detail:   "Tooltips can only be attached to or shown next to an element with a rendered box (non-zero width or height).",
	},
	"T003": {
		Category: CategoryAnchor,
		Message:  "Anchor is detached",
		Detail:   "The anchor has no parent, so there is nowhere to insert the popup next to it.",
	},

	// ============================================
	// Lookup Errors (T010-T019)
	// ============================================

	"T010": {
		Category: CategoryLookup,
		Message:  "Tooltip not found",
		Detail:   "The node does not belong to any live tooltip. It may have been destroyed already.",
	},
	"T011": {
		Category: CategoryLookup,
		Message:  "Unsupported hide target",
		Detail:   "Hide accepts a *tooltip.Tooltip or the popup *dom.Element of a live tooltip.",
	},

	// ============================================
	// Input Errors (T020-T029, T040-T049)
	// ============================================

	"T020": {
		Category: CategoryInput,
		Message:  "Malformed data-tooltip options",
		Detail:   "The data-tooltip attribute must be empty or hold a JSON object.",
	},
	"T040": {
		Category: CategoryInput,
		Message:  "Fixture parse error",
		Detail:   "The page fixture could not be decoded.",
	},
	"T041": {
		Category: CategoryInput,
		Message:  "Unknown fixture element",
		Detail:   "A scripted event targets an id that does not exist in the fixture.",
	},
	"T042": {
		Category: CategoryInput,
		Message:  "Invalid geometry",
		Detail:   "Geometry must be a comma-separated list of numbers.",
	},

	// ============================================
	// Config Errors (T030-T039)
	// ============================================

	"T030": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "A value in the tooltip configuration is out of range.",
	},
	"T031": {
		Category: CategoryConfig,
		Message:  "Configuration file unreadable",
		Detail:   "The tooltip configuration file exists but could not be read or decoded.",
	},

	// ============================================
	// CLI Errors (T050-T059)
	// ============================================

	"T050": {
		Category: CategoryCLI,
		Message:  "No input files",
		Detail:   "None of the given patterns matched a fixture file.",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
