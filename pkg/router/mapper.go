package router

import (
	"context"
	"fmt"
	"go/token"
	"strings"

	"github.com/routewalk/routewalk/internal/errors"
)

// Mapper resolves scanned route files into route definitions. Mapping loads
// the file's handler set through the injected resolver, so it takes a
// context: module loading may block on I/O.
type Mapper struct {
	resolver Resolver
}

// NewMapper creates a mapper backed by the given resolver.
func NewMapper(resolver Resolver) *Mapper {
	return &Mapper{resolver: resolver}
}

// Map resolves a single route file into an immutable RouteDefinition.
// The returned definition is fully resolved: no further derivation happens
// outside this step.
func (m *Mapper) Map(ctx context.Context, file RouteFile) (*RouteDefinition, error) {
	handlers, err := m.resolver.Load(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", file.RelativePath, err)
	}
	if err := validateHandlerSet(handlers, file); err != nil {
		return nil, err
	}

	params, err := extractParams(file)
	if err != nil {
		return nil, err
	}

	def := &RouteDefinition{
		URLPath:  derivePattern(file, handlers.PathPrefix),
		FilePath: file.RelativePath,
		Priority: priorityFor(file),
		Params:   params,
		Handlers: handlers,
		Meta:     handlers.Meta,
	}
	return def, nil
}

// validateHandlerSet checks that the loaded module exposes one of the two
// supported shapes and only supported methods.
func validateHandlerSet(hs *HandlerSet, file RouteFile) error {
	if hs == nil || (hs.Dispatcher == nil && len(hs.Methods) == 0) {
		return errors.New(errors.CodeInvalidRouteFile).WithFile(file.RelativePath)
	}
	for method := range hs.Methods {
		if !MethodSupported(method) {
			return errors.New(errors.CodeInvalidRouteFile).
				WithFile(file.RelativePath).
				WithDetailf("method %q is not supported; supported methods are %s",
					method, strings.Join(Methods, ", "))
		}
	}
	return nil
}

// derivePattern builds the dispatch pattern from the classified segments.
// An explicit path prefix declared by the module is used verbatim.
func derivePattern(file RouteFile, prefix string) string {
	if prefix != "" {
		return prefix
	}

	parts := make([]string, 0, len(file.Segments))
	for _, seg := range file.Segments {
		switch seg.Kind {
		case SegmentIndex:
			// Collapses to the parent path.
		case SegmentCatchAll:
			parts = append(parts, "*")
		case SegmentDynamic:
			parts = append(parts, ":"+seg.Name)
		default:
			parts = append(parts, seg.Raw)
		}
	}

	path := strings.Join(parts, "/")
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	path = strings.Trim(path, "/")
	if path == "" {
		return "/"
	}
	return "/" + path
}

// extractParams captures parameter names from dynamic and catch-all
// segments in left-to-right order and validates each one. Handlers are Go,
// so names must be valid Go identifiers and Go keywords are reserved.
func extractParams(file RouteFile) ([]string, error) {
	var params []string
	for _, seg := range file.Segments {
		if seg.Kind != SegmentDynamic && seg.Kind != SegmentCatchAll {
			continue
		}
		if token.IsKeyword(seg.Name) {
			return nil, errors.New(errors.CodeInvalidParamName).
				WithFile(file.RelativePath).
				WithDetailf("parameter %q in segment %q is a reserved word", seg.Name, seg.Raw)
		}
		if !token.IsIdentifier(seg.Name) {
			return nil, errors.New(errors.CodeInvalidParamName).
				WithFile(file.RelativePath).
				WithDetailf("parameter %q in segment %q is not a valid identifier", seg.Name, seg.Raw)
		}
		params = append(params, seg.Name)
	}
	return params, nil
}

// priorityFor returns the matching tier for a route file.
func priorityFor(file RouteFile) int {
	switch {
	case file.IsCatchAll:
		return PriorityCatchAll
	case file.IsDynamic:
		return PriorityDynamic
	default:
		return PriorityStatic
	}
}
