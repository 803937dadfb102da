package errors

// Error codes used across the engine.
const (
	CodeInvalidRouteFile = "R001"
	CodeInvalidParamName = "R002"
	CodeDuplicateRoute   = "R003"
	CodeScanFailed       = "R004"
	CodeRegistryApplied  = "R005"
	CodeConfigInvalid    = "R010"
	CodeConfigNotFound   = "R011"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
	Example    string
	DocURL     string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Route Resolution Errors (R001-R009)
	// ============================================

	CodeInvalidRouteFile: {
		Category: CategoryRoute,
		Message:  "Invalid route file",
		Detail: "The route file exposes neither a pre-built dispatcher nor any " +
			"recognized HTTP method handler (GET, POST, PUT, PATCH, DELETE, OPTIONS). " +
			"HEAD handlers are not supported.",
		Suggestion: "Export a Handler, or one exported function per HTTP method.",
		Example: `// Shape 1: a pre-built dispatcher used as-is.
var Handler http.Handler = myMux

// Shape 2: one exported function per HTTP method.
func GET(c *router.Ctx) (any, error)  { ... }
func POST(c *router.Ctx) (any, error) { ... }`,
		DocURL: "https://routewalk.dev/docs/errors/R001",
	},
	CodeInvalidParamName: {
		Category: CategoryRoute,
		Message:  "Invalid route parameter name",
		Detail: "Parameter names captured from [name] and [...name] segments must be " +
			"valid Go identifiers and must not be reserved words.",
		Suggestion: "Rename the segment to a valid, non-reserved identifier.",
		DocURL:     "https://routewalk.dev/docs/errors/R002",
	},
	CodeDuplicateRoute: {
		Category: CategoryRegistry,
		Message:  "Duplicate route detected",
		Detail: "Two route files resolve to the identical URL pattern. The route table " +
			"must be unambiguous before it can be applied to a dispatcher.",
		Suggestion: "Remove or rename one of the conflicting files.",
		DocURL:     "https://routewalk.dev/docs/errors/R003",
	},
	CodeScanFailed: {
		Category: CategoryScan,
		Message:  "Route directory unreadable",
		Detail: "The route directory exists but could not be read. A missing directory " +
			"yields an empty route set; an unreadable one is a hard failure.",
		Suggestion: "Check the directory permissions and that the path is a directory.",
		DocURL:     "https://routewalk.dev/docs/errors/R004",
	},
	CodeRegistryApplied: {
		Category: CategoryRegistry,
		Message:  "Route registry already applied",
		Detail: "The registry has been handed to a dispatcher and is read-only. " +
			"Registering or re-applying routes after that point is not allowed.",
		Suggestion: "Register every route before calling Apply, and call Apply once.",
		DocURL:     "https://routewalk.dev/docs/errors/R005",
	},

	// ============================================
	// Configuration Errors (R010-R019)
	// ============================================

	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The routewalk.yaml configuration file could not be parsed.",
		DocURL:   "https://routewalk.dev/docs/errors/R010",
	},
	CodeConfigNotFound: {
		Category:   CategoryConfig,
		Message:    "No routewalk.yaml found",
		Detail:     "The project configuration file is missing.",
		Suggestion: "Create a routewalk.yaml in the project root, or rely on the built-in defaults with LoadOrDefault.",
		DocURL:     "https://routewalk.dev/docs/errors/R011",
	},
}

// Register adds a custom error template to the registry.
// Codes starting with "R" are reserved for built-in errors.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}

// Lookup returns the template for an error code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
