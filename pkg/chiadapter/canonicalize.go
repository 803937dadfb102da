package chiadapter

import (
	"net/http"

	"github.com/routewalk/routewalk/pkg/routepath"
)

// Canonicalize is middleware that normalizes request paths before they
// reach the route table. Paths that change under canonicalization
// (trailing slash, duplicate slashes, "." and ".." segments) redirect
// to the canonical form; malformed paths are rejected with 400.
//
//	mux := chi.NewRouter()
//	mux.Use(chiadapter.Canonicalize)
func Canonicalize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := routepath.Canonicalize(r.URL.RequestURI())
		if err != nil {
			http.Error(w, "invalid path", http.StatusBadRequest)
			return
		}
		if result.Changed {
			target := result.Path
			if result.Query != "" {
				target += "?" + result.Query
			}
			http.Redirect(w, r, target, http.StatusPermanentRedirect)
			return
		}
		next.ServeHTTP(w, r)
	})
}
