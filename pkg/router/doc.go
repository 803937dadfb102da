// Package router implements file-derived route resolution for routewalk.
//
// The package provides:
//   - File-system based route discovery from a handler directory
//   - A segment classification DSL ([name], [...name], index)
//   - Parameter extraction and identifier validation
//   - A deterministic priority ordering (static < dynamic < catch-all)
//   - Duplicate and ambiguous-route detection before dispatch
//
// # File Structure Convention
//
// Routes are defined by Go files under the route directory:
//
//	app/routes/
//	├── index.go             → /
//	├── about.go             → /about
//	├── users/
//	│   ├── index.go         → /users
//	│   ├── [id].go          → /users/:id
//	│   └── [id]/posts.go    → /users/:id/posts
//	└── docs/
//	    └── [...slug].go     → /docs/*
//
// # Segment Syntax
//
// Each path component is classified exactly one way:
//
//	name        static segment, matched literally
//	[name]      dynamic segment, binds one path parameter
//	[...name]   catch-all segment, greedily binds the remaining path
//	index       collapses to the parent path
//
// # Route Files
//
// A route file exposes handlers in one of two shapes: a pre-built
// dispatcher used as-is, or one exported function per HTTP method
// (GET, POST, PUT, PATCH, DELETE, OPTIONS — HEAD is not supported).
// Method handlers receive a normalized request context with path
// parameters, query parameters, and a lazy body decoder.
//
// # Usage
//
//	scanner := router.NewScanner("app/routes")
//	files, err := scanner.Scan()
//
//	mapper := router.NewMapper(resolver)
//	registry := router.NewRegistry()
//	for _, f := range files {
//	    def, err := mapper.Map(ctx, f)
//	    if err != nil { ... }
//	    if err := registry.Register(def); err != nil { ... }
//	}
//
//	// Hand the sorted, conflict-free table to the dispatcher.
//	err = registry.Apply(dispatcher)
//
// Resolution runs once during application boot, single-threaded. The
// registry is order-sensitive: static routes are applied before dynamic,
// and dynamic before catch-all, so first-registered-wins dispatchers
// match the most specific route.
package router
