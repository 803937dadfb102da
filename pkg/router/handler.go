package router

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Methods lists the HTTP methods a route file may export handlers for.
// HEAD is intentionally absent: it is not supported as a handler export.
var Methods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// MethodSupported reports whether method may appear in HandlerSet.Methods.
func MethodSupported(method string) bool {
	for _, m := range Methods {
		if m == method {
			return true
		}
	}
	return false
}

// HandlerFunc handles a request through the normalized context. The
// returned value is encoded as the JSON response body; a nil value yields
// 204 No Content.
type HandlerFunc func(c *Ctx) (any, error)

// Ctx is the normalized request context passed to method handlers. It
// exposes path parameters, parsed query parameters (repeated keys become
// slices), and a lazy body decoder.
type Ctx struct {
	w      http.ResponseWriter
	r      *http.Request
	params map[string]string

	query url.Values

	body    []byte
	bodyErr error
	read    bool
}

// NewCtx creates a request context with the extracted path parameters.
func NewCtx(w http.ResponseWriter, r *http.Request, params map[string]string) *Ctx {
	if params == nil {
		params = map[string]string{}
	}
	return &Ctx{w: w, r: r, params: params}
}

// Request returns the underlying request.
func (c *Ctx) Request() *http.Request { return c.r }

// Writer returns the underlying response writer.
func (c *Ctx) Writer() http.ResponseWriter { return c.w }

// Param returns the named path parameter, or "" if absent.
func (c *Ctx) Param(name string) string { return c.params[name] }

// Params returns all path parameters.
func (c *Ctx) Params() map[string]string { return c.params }

// Query returns the first value for the named query parameter.
func (c *Ctx) Query(name string) string {
	return c.queryValues().Get(name)
}

// QueryAll returns every value for the named query parameter. Repeated
// keys produce multiple entries.
func (c *Ctx) QueryAll(name string) []string {
	return c.queryValues()[name]
}

func (c *Ctx) queryValues() url.Values {
	if c.query == nil {
		c.query = c.r.URL.Query()
	}
	return c.query
}

// Bind decodes the request body as JSON into v. The body is read lazily on
// the first call and cached, so Bind may be called more than once.
func (c *Ctx) Bind(v any) error {
	if !c.read {
		c.read = true
		c.body, c.bodyErr = io.ReadAll(c.r.Body)
	}
	if c.bodyErr != nil {
		return fmt.Errorf("reading body: %w", c.bodyErr)
	}
	if len(c.body) == 0 {
		return io.EOF
	}
	return json.Unmarshal(c.body, v)
}

// BindParams populates a `param`-tagged struct from the path parameters.
func (c *Ctx) BindParams(v any) error {
	return NewParamParser().Parse(c.params, v)
}

// Serve invokes a method handler and writes its result as a JSON response.
// Errors map to a 500 with a JSON error body; nil results map to 204.
func Serve(h HandlerFunc, w http.ResponseWriter, r *http.Request, params map[string]string) {
	c := NewCtx(w, r, params)
	out, err := h(c)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if out == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Wrap applies the set's middleware chain around h, outermost first.
func (hs *HandlerSet) Wrap(h http.Handler) http.Handler {
	for i := len(hs.Middleware) - 1; i >= 0; i-- {
		h = hs.Middleware[i](h)
	}
	return h
}
