package routewalk

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	stderrors "errors"

	"github.com/routewalk/routewalk/internal/errors"
	"github.com/routewalk/routewalk/pkg/router"
)

// writeTree creates route files under a temp dir. Paths use forward
// slashes relative to the returned root.
func writeTree(t *testing.T, paths ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("package routes\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func methodsOnly(methods ...string) *router.HandlerSet {
	hs := &router.HandlerSet{Methods: map[string]router.HandlerFunc{}}
	for _, m := range methods {
		hs.Methods[m] = func(c *router.Ctx) (any, error) { return nil, nil }
	}
	return hs
}

// recordingDispatcher captures applied definitions in order.
type recordingDispatcher struct {
	patterns []string
}

func (d *recordingDispatcher) Register(def *router.RouteDefinition) error {
	d.patterns = append(d.patterns, def.URLPath)
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEngineBoot(t *testing.T) {
	root := writeTree(t,
		"index.go",
		"users/index.go",
		"users/[id].go",
		"docs/[...slug].go",
	)
	resolver := router.ManifestResolver{
		"index.go":          methodsOnly("GET"),
		"users/index.go":    methodsOnly("GET", "POST"),
		"users/[id].go":     methodsOnly("GET"),
		"docs/[...slug].go": methodsOnly("GET"),
	}

	engine := New(root, WithResolver(resolver), WithLogger(quietLogger()))
	dispatcher := &recordingDispatcher{}
	if err := engine.Boot(context.Background(), dispatcher); err != nil {
		t.Fatalf("Boot: %v", err)
	}

	if len(dispatcher.patterns) != 4 {
		t.Fatalf("dispatcher saw %d routes, want 4", len(dispatcher.patterns))
	}
	want := map[string]bool{"/": true, "/users": true, "/users/:id": true, "/docs/*": true}
	for _, p := range dispatcher.patterns {
		if !want[p] {
			t.Errorf("unexpected pattern %q", p)
		}
	}
}

func TestEngineRoutesOrder(t *testing.T) {
	root := writeTree(t,
		"users/index.go",
		"users/[id].go",
		"users/me.go",
		"[...rest].go",
	)
	resolver := router.ManifestResolver{
		"users/index.go": methodsOnly("GET"),
		"users/[id].go":  methodsOnly("GET"),
		"users/me.go":    methodsOnly("GET"),
		"[...rest].go":   methodsOnly("GET"),
	}

	engine := New(root, WithResolver(resolver), WithLogger(quietLogger()))
	routes, err := engine.Routes(context.Background())
	if err != nil {
		t.Fatalf("Routes: %v", err)
	}

	var got []string
	for _, def := range routes {
		got = append(got, def.URLPath)
	}
	want := []string{"/users/me", "/users", "/users/:id", "/*"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestEngineDeterminism(t *testing.T) {
	root := writeTree(t,
		"a/index.go", "b/[x].go", "c/[...y].go", "d.go", "e/[z]/f.go",
	)
	resolver := router.ManifestResolver{
		"a/index.go": methodsOnly("GET"),
		"b/[x].go":   methodsOnly("GET"),
		"c/[...y].go": methodsOnly("GET"),
		"d.go":        methodsOnly("GET"),
		"e/[z]/f.go":  methodsOnly("GET"),
	}

	var first []string
	for run := 0; run < 3; run++ {
		engine := New(root, WithResolver(resolver), WithLogger(quietLogger()))
		routes, err := engine.Routes(context.Background())
		if err != nil {
			t.Fatalf("Routes: %v", err)
		}
		var got []string
		for _, def := range routes {
			got = append(got, def.URLPath)
		}
		if first == nil {
			first = got
			continue
		}
		if !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d order %v differs from %v", run, got, first)
		}
	}
}

func TestEngineMissingRootDir(t *testing.T) {
	engine := New(filepath.Join(t.TempDir(), "nope"), WithLogger(quietLogger()))
	routes, err := engine.Routes(context.Background())
	if err != nil {
		t.Fatalf("Routes: %v", err)
	}
	if len(routes) != 0 {
		t.Errorf("missing dir produced %d routes, want 0", len(routes))
	}
}

func TestEngineDuplicateAborts(t *testing.T) {
	root := writeTree(t,
		"users/index.go",
		"users.go",
	)
	resolver := router.ManifestResolver{
		"users/index.go": methodsOnly("GET"),
		"users.go":       methodsOnly("GET"),
	}

	engine := New(root, WithResolver(resolver), WithLogger(quietLogger()))
	_, err := engine.Resolve(context.Background())
	if !errors.IsCode(err, errors.CodeDuplicateRoute) {
		t.Fatalf("Resolve = %v, want %s", err, errors.CodeDuplicateRoute)
	}
}

func TestEngineResolverErrorAborts(t *testing.T) {
	root := writeTree(t, "users.go")
	boom := stderrors.New("load failed")
	resolver := router.ResolverFunc(func(ctx context.Context, file router.RouteFile) (*router.HandlerSet, error) {
		return nil, boom
	})

	engine := New(root, WithResolver(resolver), WithLogger(quietLogger()))
	if _, err := engine.Resolve(context.Background()); !stderrors.Is(err, boom) {
		t.Fatalf("Resolve = %v, want wrapped %v", err, boom)
	}
}

func TestEngineExclude(t *testing.T) {
	root := writeTree(t,
		"users.go",
		"drafts/wip.go",
	)
	resolver := router.ManifestResolver{
		"users.go": methodsOnly("GET"),
	}

	engine := New(root,
		WithResolver(resolver),
		WithLogger(quietLogger()),
		WithExclude("drafts/**"),
	)
	routes, err := engine.Routes(context.Background())
	if err != nil {
		t.Fatalf("Routes: %v", err)
	}
	if len(routes) != 1 || routes[0].URLPath != "/users" {
		t.Errorf("routes = %v, want only /users", routes)
	}
}

func TestEngineCustomIndexMarker(t *testing.T) {
	root := writeTree(t, "users/page.go")
	resolver := router.ManifestResolver{
		"users/page.go": methodsOnly("GET"),
	}

	engine := New(root,
		WithResolver(resolver),
		WithLogger(quietLogger()),
		WithIndexMarker("page"),
	)
	routes, err := engine.Routes(context.Background())
	if err != nil {
		t.Fatalf("Routes: %v", err)
	}
	if len(routes) != 1 || routes[0].URLPath != "/users" {
		t.Errorf("routes = %v, want /users", routes)
	}
}
