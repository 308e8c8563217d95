// Package resolver implements the three-tier module resolution engine:
// reactor, local workspace, repository, in that order.
package resolver

import (
	"context"
	"slices"
	"strings"

	"github.com/monday-consulting/modres/internal/core/domain"
	"github.com/monday-consulting/modres/internal/core/ports"
	"go.trai.ch/zerr"
)

// Engine resolves module declarations by consulting an ordered list of
// locator tiers. The order of the locators is the resolution policy.
type Engine struct {
	locators []ports.Locator
	logger   ports.Logger
	tracer   ports.Tracer
}

// New creates an Engine that tries the given locators in order.
func New(logger ports.Logger, tracer ports.Tracer, locators ...ports.Locator) *Engine {
	return &Engine{
		locators: locators,
		logger:   logger,
		tracer:   tracer,
	}
}

// Resolve resolves every coordinate of the declaration, in order, and
// assembles the result into a Module. Either every requested coordinate
// resolves to exactly one project or the whole operation fails; no partial
// module is ever returned.
//
// Coordinates are resolved strictly sequentially: each one runs to completion,
// including any remote fetch, before the next is attempted.
func (e *Engine) Resolve(ctx context.Context, decl domain.Declaration) (*domain.Module, error) {
	ctx, span := e.tracer.Start(ctx, "resolve")
	defer span.End()
	span.SetAttribute("scopes", strings.Join(decl.Scopes, ","))

	projects := make([]*domain.Project, 0, len(decl.Coordinates))
	for _, coord := range decl.Coordinates {
		project, err := e.resolveCoordinate(ctx, coord)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		projects = append(projects, project)
	}

	return &domain.Module{
		Coordinates: slices.Clone(decl.Coordinates),
		Scopes:      slices.Clone(decl.Scopes),
		Projects:    normalize(projects),
	}, nil
}

func (e *Engine) resolveCoordinate(ctx context.Context, coord domain.Coordinate) (*domain.Project, error) {
	ctx, span := e.tracer.Start(ctx, "resolve.coordinate")
	defer span.End()
	span.SetAttribute("coordinate", coord.String())

	e.logger.Debug("resolving module " + coord.Key())

	for _, locator := range e.locators {
		project, err := locator.Locate(ctx, coord)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		if project != nil {
			span.SetAttribute("origin", string(project.Origin))
			return project, nil
		}
	}

	err := zerr.With(domain.ErrResolutionFailed, "coordinate", coord.String())
	span.RecordError(err)
	return nil, err
}

// normalize deep-copies every resolved project and attaches the permissive
// artifact filter. Downstream consumers expect a filter to be present;
// without one they may reject the project during transitive filtering.
func normalize(projects []*domain.Project) []*domain.Project {
	out := make([]*domain.Project, len(projects))
	for i, p := range projects {
		clone := p.Clone()
		clone.Filter = domain.PermissiveFilter
		out[i] = clone
	}
	return out
}
