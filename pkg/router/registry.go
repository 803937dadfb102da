package router

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/routewalk/routewalk/internal/errors"
)

// registryState tracks the registry lifecycle. There is no transition back
// to open once the table has been handed to a dispatcher.
type registryState int

const (
	stateOpen registryState = iota
	stateApplied
)

// Registry collects route definitions, rejects duplicates, warns about
// ambiguous shapes, and applies the sorted table to a dispatcher.
//
// The registry is not safe for concurrent use: resolution runs once during
// boot, single-threaded, because duplicate and conflict detection are
// order-sensitive.
type Registry struct {
	logger *slog.Logger

	byPath  map[string]*RouteDefinition
	byShape map[string][]*RouteDefinition
	routes  []*RouteDefinition
	state   registryState
}

// RegistryOption configures a registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger used for conflict warnings.
func WithRegistryLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty, open registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		logger:  slog.Default(),
		byPath:  make(map[string]*RouteDefinition),
		byShape: make(map[string][]*RouteDefinition),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a route definition to the registry. It fails if the exact
// URL pattern is already present, or if the registry has been applied.
// Registration failures are fatal at boot: the application must not start
// with an ambiguous or duplicate route table.
func (r *Registry) Register(def *RouteDefinition) error {
	if r.state == stateApplied {
		return errors.New(errors.CodeRegistryApplied).
			WithDetailf("cannot register %q after the table was applied", def.URLPath)
	}

	if existing, ok := r.byPath[def.URLPath]; ok {
		return errors.New(errors.CodeDuplicateRoute).
			WithFile(def.FilePath).
			WithDetailf("pattern %q is already registered by %s", def.URLPath, existing.FilePath)
	}

	r.warnConflicts(def)

	shape := shapeKey(def.URLPath)
	r.byPath[def.URLPath] = def
	r.byShape[shape] = append(r.byShape[shape], def)
	r.routes = append(r.routes, def)
	return nil
}

// warnConflicts emits a non-fatal warning when an already registered route
// has the same priority and structural shape as def but different dynamic
// parameter names (e.g. /users/:id vs /users/:userId). Such pairs pass the
// duplicate check yet cannot be distinguished structurally by a dispatcher.
func (r *Registry) warnConflicts(def *RouteDefinition) {
	for _, other := range r.byShape[shapeKey(def.URLPath)] {
		// Same shape implies same priority and segment count; the exact
		// duplicate case was already rejected, so the patterns differ only
		// in parameter names.
		r.logger.Warn("ambiguous route shapes",
			"pattern", def.URLPath,
			"file", def.FilePath,
			"conflicting_pattern", other.URLPath,
			"conflicting_file", other.FilePath,
		)
	}
}

// SortedRoutes returns the definitions in dispatch order: priority
// ascending, then segment count descending (deeper routes of the same tier
// match first), then pattern lexicographic ascending. The sort is stable
// and the result deterministic for a given directory tree.
func (r *Registry) SortedRoutes() []*RouteDefinition {
	sorted := make([]*RouteDefinition, len(r.routes))
	copy(sorted, r.routes)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		an, bn := segmentCount(a.URLPath), segmentCount(b.URLPath)
		if an != bn {
			return an > bn
		}
		return a.URLPath < b.URLPath
	})

	return sorted
}

// Apply hands the sorted table to the dispatcher, one route at a time, in
// the exact sorted order. The order is load-bearing for dispatchers that
// match first-registered-wins. After Apply the registry is read-only.
func (r *Registry) Apply(d Dispatcher) error {
	if r.state == stateApplied {
		return errors.New(errors.CodeRegistryApplied).
			WithDetail("the route table was already applied to a dispatcher")
	}

	for _, def := range r.SortedRoutes() {
		if err := d.Register(def); err != nil {
			return err
		}
	}

	r.state = stateApplied
	return nil
}

// Applied reports whether the registry has been handed to a dispatcher.
func (r *Registry) Applied() bool {
	return r.state == stateApplied
}

// Len returns the number of registered routes.
func (r *Registry) Len() int {
	return len(r.routes)
}

// segmentCount counts the path components of a pattern. The root path has
// zero.
func segmentCount(pattern string) int {
	trimmed := strings.Trim(pattern, "/")
	if trimmed == "" {
		return 0
	}
	return strings.Count(trimmed, "/") + 1
}

// shapeKey reduces a pattern to its structural shape: dynamic parameter
// names are erased so that /users/:id and /users/:userId share a key.
func shapeKey(pattern string) string {
	parts := strings.Split(pattern, "/")
	for i, part := range parts {
		if strings.HasPrefix(part, ":") {
			parts[i] = ":"
		}
	}
	return strings.Join(parts, "/")
}
