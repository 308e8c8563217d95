// Package app implements the application layer for modres.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"go.trai.ch/zerr"

	"github.com/monday-consulting/modres/internal/adapters/descriptor"
	"github.com/monday-consulting/modres/internal/adapters/detector"
	"github.com/monday-consulting/modres/internal/adapters/repo"
	"github.com/monday-consulting/modres/internal/adapters/telemetry"
	"github.com/monday-consulting/modres/internal/core/domain"
	"github.com/monday-consulting/modres/internal/core/ports"
	"github.com/monday-consulting/modres/internal/engine/resolver"
	"github.com/monday-consulting/modres/internal/ui/output"
)

// App represents the main application logic.
type App struct {
	loader ports.ContextLoader
	logger ports.Logger
	stdout io.Writer
}

// New creates a new App instance.
func New(loader ports.ContextLoader, log ports.Logger) *App {
	return &App{
		loader: loader,
		logger: log,
		stdout: os.Stdout,
	}
}

// WithOutput redirects the resolution report. Used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	Scopes     []string
	OutputMode string
	Inspect    bool
}

// Resolve resolves the given coordinates against the current workspace and
// prints a resolution report. When no coordinates are given, the declared
// dependencies of the current module are resolved instead.
func (a *App) Resolve(ctx context.Context, coordinates []string, opts ResolveOptions) error {
	// 1. Telemetry: report span lifecycle to the logger at debug level.
	shutdown := telemetry.Setup(a.logger)
	defer func() {
		_ = shutdown(ctx)
	}()
	tracer := telemetry.NewOTelTracer()

	// 2. Load the build context from the workspace.
	bctx, err := a.loader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load workspace")
	}

	// 3. Determine what to resolve.
	decl, err := declaration(bctx, coordinates, opts.Scopes)
	if err != nil {
		return err
	}

	// 4. Assemble the repository adapters from the build context.
	layout := repo.NewLayout(bctx.CacheRoot)
	fetcher := repo.NewFetcher(bctx.RepositoryURL, layout, a.logger)
	builder := descriptor.NewBuilder(layout, fetcher)

	// 5. Resolve, tier by tier: reactor, local workspace, repository.
	engine := resolver.New(a.logger, tracer,
		resolver.NewReactorLocator(bctx.Reactor, a.logger),
		resolver.NewWorkspaceLocator(bctx.Root(), builder, a.logger),
		resolver.NewRepositoryLocator(bctx.Current, layout, builder, fetcher, a.logger),
	)

	module, err := engine.Resolve(ctx, decl)
	if err != nil {
		return err
	}

	// 6. Render the report.
	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)
	output.NewReport(a.stdout, mode == detector.ModeColor).Render(module)

	if opts.Inspect {
		_, _ = fmt.Fprint(a.stdout, spew.Sdump(module))
	}

	return nil
}

// declaration builds the resolution request: explicit coordinates when given,
// otherwise the current module's declared dependencies filtered by scope.
func declaration(bctx *domain.BuildContext, coordinates, scopes []string) (domain.Declaration, error) {
	if len(coordinates) > 0 {
		coords := make([]domain.Coordinate, 0, len(coordinates))
		for _, raw := range coordinates {
			coord, err := domain.ParseCoordinate(raw)
			if err != nil {
				return domain.Declaration{}, err
			}
			coords = append(coords, coord)
		}
		return domain.Declaration{Coordinates: coords, Scopes: scopes}, nil
	}

	coords := make([]domain.Coordinate, 0, len(bctx.Current.Dependencies))
	for _, dep := range bctx.Current.Dependencies {
		if dep.AppliesTo(scopes) {
			coords = append(coords, dep.Coordinate)
		}
	}
	if len(coords) == 0 {
		return domain.Declaration{}, domain.ErrNothingToResolve
	}
	return domain.Declaration{Coordinates: coords, Scopes: scopes}, nil
}
