// Package routewalk resolves file-derived routes. It walks a directory
// of Go handler files, derives a URL pattern for each one ([id] → :id,
// [...slug] → *, index files collapse to their parent path), validates
// parameter names, rejects duplicates, and hands the ordered route
// table to an external HTTP dispatcher.
//
// This is the recommended import for most applications:
//
//	import "github.com/routewalk/routewalk"
//
// Usage:
//
//	engine := routewalk.New("app/routes",
//	    routewalk.WithResolver(resolver),
//	)
//	adapter := chiadapter.New(chi.NewRouter())
//	if err := engine.Boot(ctx, adapter); err != nil {
//	    log.Fatal(err)
//	}
package routewalk
