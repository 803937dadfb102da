// Package chiadapter applies a resolved route table to a chi router.
//
// The adapter translates routewalk patterns to chi syntax (":id" becomes
// "{id}", a trailing "*" becomes chi's catch-all wildcard) and registers
// each route in the order the registry hands them over, so chi sees static
// routes before dynamic and dynamic before catch-all.
package chiadapter

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/routewalk/routewalk/pkg/router"
)

// Adapter registers resolved routes on a chi router.
type Adapter struct {
	mux chi.Router
}

// New creates an adapter around the given chi router.
func New(mux chi.Router) *Adapter {
	return &Adapter{mux: mux}
}

// Register implements router.Dispatcher.
func (a *Adapter) Register(def *router.RouteDefinition) error {
	pattern := ToChiPattern(def.URLPath)
	hs := def.Handlers

	if hs.Dispatcher != nil {
		a.mux.Handle(pattern, hs.Wrap(hs.Dispatcher))
		return nil
	}

	for _, method := range sortedMethods(hs.Methods) {
		a.mux.Method(method, pattern, hs.Wrap(methodHandler(hs.Methods[method], def)))
	}
	return nil
}

// methodHandler adapts a routewalk handler into an http.Handler that pulls
// path parameters out of the chi route context.
func methodHandler(h router.HandlerFunc, def *router.RouteDefinition) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		router.Serve(h, w, r, extractParams(r, def))
	})
}

// extractParams maps chi's URL parameters onto the route's parameter names.
// chi exposes the catch-all tail under "*"; it is renamed to the declared
// catch-all parameter so handlers see the name from the file path.
func extractParams(r *http.Request, def *router.RouteDefinition) map[string]string {
	params := make(map[string]string, len(def.Params))

	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return params
	}
	for i, key := range rctx.URLParams.Keys {
		value := rctx.URLParams.Values[i]
		if key == "*" {
			if def.Priority == router.PriorityCatchAll && len(def.Params) > 0 {
				key = def.Params[len(def.Params)-1]
			} else {
				continue
			}
		}
		params[key] = value
	}
	return params
}

// ToChiPattern converts a routewalk pattern to chi syntax.
//
//	/users/:id  → /users/{id}
//	/docs/*     → /docs/*
//	/           → /
func ToChiPattern(pattern string) string {
	if pattern == "/" {
		return "/"
	}
	parts := strings.Split(pattern, "/")
	for i, part := range parts {
		if strings.HasPrefix(part, ":") {
			parts[i] = "{" + part[1:] + "}"
		}
	}
	return strings.Join(parts, "/")
}

func sortedMethods(methods map[string]router.HandlerFunc) []string {
	out := make([]string, 0, len(methods))
	for method := range methods {
		out = append(out, method)
	}
	sort.Strings(out)
	return out
}
