package routewalk

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/routewalk/routewalk/pkg/router"
	"github.com/routewalk/routewalk/pkg/telemetry"
)

// Engine orchestrates route resolution: scan the route directory, map
// each file to a route definition, register the definitions, and apply
// the resulting table to a dispatcher.
//
// Create an Engine with routewalk.New():
//
//	engine := routewalk.New("app/routes",
//	    routewalk.WithResolver(resolver),
//	    routewalk.WithExclude("**/*_test.go"),
//	)
//	if err := engine.Boot(ctx, dispatcher); err != nil {
//	    log.Fatal(err)
//	}
type Engine struct {
	rootDir  string
	resolver router.Resolver
	logger   *slog.Logger
	metrics  *telemetry.Metrics
	tracer   *telemetry.Tracer
	scanOpts router.ScanOptions
}

// Option configures an Engine.
type Option func(*Engine)

// WithResolver sets the handler resolver. Defaults to ASTResolver,
// which inspects route files without binding real handlers.
func WithResolver(r router.Resolver) Option {
	return func(e *Engine) { e.resolver = r }
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithMetrics enables Prometheus metrics for the resolution stages.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithTracer enables OpenTelemetry spans for the resolution stages.
func WithTracer(t *telemetry.Tracer) Option {
	return func(e *Engine) { e.tracer = t }
}

// WithExclude adds glob patterns for files the scanner skips.
func WithExclude(patterns ...string) Option {
	return func(e *Engine) {
		e.scanOpts.Exclude = append(e.scanOpts.Exclude, patterns...)
	}
}

// WithIndexMarker overrides the filename that collapses to its parent
// directory's path.
func WithIndexMarker(marker string) Option {
	return func(e *Engine) { e.scanOpts.IndexMarker = marker }
}

// WithExtension overrides the file extension route files must carry.
func WithExtension(ext string) Option {
	return func(e *Engine) { e.scanOpts.Extension = ext }
}

// New creates an Engine for the given route directory.
func New(rootDir string, opts ...Option) *Engine {
	e := &Engine{
		rootDir:  rootDir,
		resolver: router.ASTResolver{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resolve runs scan and map, registering every resolved route. The
// returned registry is still open: callers hand it to a dispatcher
// with Apply, or inspect it with SortedRoutes.
//
// Resolution is fail-fast. The first invalid route file, invalid
// parameter name or duplicate route aborts with an error.
func (e *Engine) Resolve(ctx context.Context) (*router.Registry, error) {
	ctx, span := e.tracer.Start(ctx, "routewalk.Resolve",
		attribute.String("routes.dir", e.rootDir))
	var err error
	defer func() { telemetry.End(span, err) }()

	files, err := e.scan(ctx)
	if err != nil {
		return nil, err
	}

	registry := router.NewRegistry(router.WithRegistryLogger(e.logger))
	mapper := router.NewMapper(e.resolver)

	for _, file := range files {
		var def *router.RouteDefinition
		def, err = mapper.Map(ctx, file)
		if err != nil {
			e.metrics.ResolveError("map")
			return nil, err
		}
		if err = registry.Register(def); err != nil {
			e.metrics.ResolveError("register")
			return nil, err
		}
		e.metrics.RouteRegistered(def.Priority)
	}

	e.logger.Info("routes resolved",
		"dir", e.rootDir,
		"files", len(files),
		"routes", registry.Len())
	return registry, nil
}

// Boot resolves the route table and applies it to the dispatcher in
// registration order. After Boot returns the registry is closed.
func (e *Engine) Boot(ctx context.Context, dispatcher router.Dispatcher) error {
	registry, err := e.Resolve(ctx)
	if err != nil {
		return err
	}

	_, span := e.tracer.Start(ctx, "routewalk.Apply",
		attribute.Int("routes.count", registry.Len()))
	err = registry.Apply(dispatcher)
	telemetry.End(span, err)
	if err != nil {
		e.metrics.ResolveError("apply")
		return err
	}

	e.logger.Info("routes applied", "routes", registry.Len())
	return nil
}

// Routes resolves the route table and returns it in stable order:
// priority tier ascending, segment count descending, pattern
// lexicographic ascending.
func (e *Engine) Routes(ctx context.Context) ([]*router.RouteDefinition, error) {
	registry, err := e.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return registry.SortedRoutes(), nil
}

func (e *Engine) scan(ctx context.Context) ([]router.RouteFile, error) {
	_, span := e.tracer.Start(ctx, "routewalk.Scan",
		attribute.String("routes.dir", e.rootDir))

	start := time.Now()
	files, err := router.NewScanner(e.rootDir).ScanWithOptions(e.scanOpts)
	telemetry.End(span, err)
	if err != nil {
		e.metrics.ResolveError("scan")
		return nil, err
	}
	e.metrics.ObserveScan(len(files), time.Since(start))
	return files, nil
}
