package router

import (
	"context"
	"net/http"
)

// SegmentKind classifies one path component of a route file.
type SegmentKind int

const (
	// SegmentStatic is a literal path component (e.g. "users").
	SegmentStatic SegmentKind = iota

	// SegmentDynamic is a single-parameter component (e.g. "[id]").
	SegmentDynamic

	// SegmentCatchAll is a greedy parameter component (e.g. "[...slug]").
	SegmentCatchAll

	// SegmentIndex is the index marker filename, which collapses to the
	// parent path.
	SegmentIndex
)

// String returns the kind as a readable name.
func (k SegmentKind) String() string {
	switch k {
	case SegmentStatic:
		return "static"
	case SegmentDynamic:
		return "dynamic"
	case SegmentCatchAll:
		return "catch-all"
	case SegmentIndex:
		return "index"
	default:
		return "unknown"
	}
}

// Segment is one classified path component.
type Segment struct {
	// Raw is the original component (e.g. "[id]", "users").
	Raw string

	// Name is the captured parameter name for dynamic and catch-all
	// segments, empty otherwise.
	Name string

	// Kind is the segment classification.
	Kind SegmentKind
}

// RouteFile represents a route file discovered by the scanner.
// It is immutable once produced and discarded after mapping.
type RouteFile struct {
	// AbsolutePath is the full path to the file.
	AbsolutePath string

	// RelativePath is the path relative to the scan root, slash-separated.
	RelativePath string

	// Segments are the classified path components: directory names plus
	// the extension-stripped filename.
	Segments []Segment

	// IsDynamic is true if any segment is dynamic or catch-all.
	IsDynamic bool

	// IsCatchAll is true if any segment is catch-all. Implies IsDynamic.
	IsCatchAll bool

	// IsIndex is true if the filename is the index marker.
	IsIndex bool
}

// Priority tiers. Lower sorts earlier and matches first.
const (
	PriorityStatic   = 1
	PriorityDynamic  = 2
	PriorityCatchAll = 3
)

// PriorityName returns the tier as a readable name.
func PriorityName(priority int) string {
	switch priority {
	case PriorityStatic:
		return "static"
	case PriorityDynamic:
		return "dynamic"
	case PriorityCatchAll:
		return "catch-all"
	default:
		return "unknown"
	}
}

// RouteMeta is free-form route metadata.
type RouteMeta struct {
	// Description is a human-readable summary of the route.
	Description string

	// Tags are free-form labels (e.g. for documentation grouping).
	Tags []string
}

// RouteDefinition is a fully resolved route, produced once per file by the
// mapper and owned by the registry until applied.
type RouteDefinition struct {
	// URLPath is the fully resolved dispatch pattern (e.g. "/users/:id",
	// "/docs/*").
	URLPath string

	// FilePath is the originating file, for diagnostics.
	FilePath string

	// Priority is the matching tier: 1 static, 2 dynamic, 3 catch-all.
	Priority int

	// Params are the parameter names extracted from dynamic and catch-all
	// segments, in left-to-right order.
	Params []string

	// Handlers is the loaded handler set for this route.
	Handlers *HandlerSet

	// Meta is optional route metadata.
	Meta *RouteMeta
}

// HandlerSet is the loaded contents of a route file. Exactly one of the two
// supported shapes must be present: a pre-built Dispatcher handler, or at
// least one entry in Methods.
type HandlerSet struct {
	// Dispatcher is a pre-built handler used as-is for every method.
	Dispatcher http.Handler

	// Methods maps HTTP methods (GET, POST, ...) to handler functions.
	Methods map[string]HandlerFunc

	// PathPrefix, when non-empty, is used verbatim as the route pattern
	// instead of deriving one from the file path.
	PathPrefix string

	// Middleware wraps the route's handlers, outermost first.
	Middleware []func(http.Handler) http.Handler

	// Meta is optional route metadata declared by the file.
	Meta *RouteMeta
}

// Resolver loads the handler set for a route file. The host runtime decides
// how code is actually loaded; the mapper only consumes the result, which
// keeps pattern derivation and validation independent of any module system.
type Resolver interface {
	Load(ctx context.Context, file RouteFile) (*HandlerSet, error)
}

// ResolverFunc is a function adapter for Resolver.
type ResolverFunc func(ctx context.Context, file RouteFile) (*HandlerSet, error)

// Load implements Resolver.
func (f ResolverFunc) Load(ctx context.Context, file RouteFile) (*HandlerSet, error) {
	return f(ctx, file)
}

// Dispatcher receives the sorted route table. Register is called once per
// route, in the exact sorted order: dispatchers that match
// first-registered-wins see static routes before dynamic, and dynamic
// before catch-all.
type Dispatcher interface {
	Register(def *RouteDefinition) error
}

// DispatcherFunc is a function adapter for Dispatcher.
type DispatcherFunc func(def *RouteDefinition) error

// Register implements Dispatcher.
func (f DispatcherFunc) Register(def *RouteDefinition) error {
	return f(def)
}
