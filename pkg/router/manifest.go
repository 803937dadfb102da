package router

import (
	"context"
	"fmt"
)

// ManifestResolver resolves handler sets from an in-memory manifest keyed
// by the route file's slash-separated relative path. It is how a host
// application binds real handler functions to scanned files, and how tests
// drive the mapper without a filesystem or module system.
type ManifestResolver map[string]*HandlerSet

// Load implements Resolver.
func (m ManifestResolver) Load(_ context.Context, file RouteFile) (*HandlerSet, error) {
	hs, ok := m[file.RelativePath]
	if !ok {
		return nil, fmt.Errorf("no handler set for %s in manifest", file.RelativePath)
	}
	return hs, nil
}
