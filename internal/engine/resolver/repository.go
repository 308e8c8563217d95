package resolver

import (
	"context"
	"os"

	"github.com/monday-consulting/modres/internal/core/domain"
	"github.com/monday-consulting/modres/internal/core/ports"
	"go.trai.ch/zerr"
)

// RepositoryLocator is the last-resort tier: it resolves coordinates from the
// local repository cache, falling back to a remote fetch. Unlike the earlier
// tiers it never falls through silently; if it cannot supply a project the
// whole resolution fails.
type RepositoryLocator struct {
	parent  *domain.Project
	layout  ports.RepositoryLayout
	builder ports.DescriptorBuilder
	fetcher ports.ArtifactFetcher
	logger  ports.Logger
}

// NewRepositoryLocator creates the repository tier. parent is the overriding
// parent project: it supplies the inferred version for versionless
// coordinates sharing its group, and becomes the parent of every project this
// tier resolves.
func NewRepositoryLocator(
	parent *domain.Project,
	layout ports.RepositoryLayout,
	builder ports.DescriptorBuilder,
	fetcher ports.ArtifactFetcher,
	logger ports.Logger,
) *RepositoryLocator {
	return &RepositoryLocator{
		parent:  parent,
		layout:  layout,
		builder: builder,
		fetcher: fetcher,
		logger:  logger,
	}
}

// Locate builds a project from the coordinate's cached descriptor, fetching
// the descriptor and the artifact from the remote repository as needed.
func (l *RepositoryLocator) Locate(ctx context.Context, coord domain.Coordinate) (*domain.Project, error) {
	l.logger.Debug("module " + coord.Key() + " not found in reactor, trying the repository")

	coord, err := l.inferVersion(coord)
	if err != nil {
		return nil, err
	}

	artifactFile := l.layout.LocalPath(coord)
	descriptorPath := l.layout.LocalPath(coord.Descriptor())

	project, err := l.builder.Build(descriptorPath, ports.BuildOptions{ResolveDependencies: true})
	if err != nil {
		l.logger.Debug("no cached descriptor, trying the remote repository for " + coord.ArtifactID)

		project, err = l.builder.BuildFromCoordinate(ctx, coord, ports.BuildOptions{ResolveDependencies: true})
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrResolutionFailed.Error()), "coordinate", coord.String())
		}
		if err := l.fetcher.Fetch(ctx, coord); err != nil {
			return nil, err
		}
	} else if _, statErr := os.Stat(artifactFile); statErr != nil {
		if err := l.fetcher.Fetch(ctx, coord); err != nil {
			return nil, err
		}
	}

	l.logger.Debug("dependency resolved: " + coord.ArtifactID + ":" + coord.Version)
	project.ArtifactFile = artifactFile
	project.Parent = l.parent
	project.Origin = domain.OriginRepository
	return project, nil
}

// inferVersion fills in a missing version from the overriding parent project
// when the groups match. Multi-module builds share a version with their root.
func (l *RepositoryLocator) inferVersion(coord domain.Coordinate) (domain.Coordinate, error) {
	if !coord.HasVersion() && l.parent != nil && l.parent.GroupID == coord.GroupID {
		l.logger.Info("assuming version " + l.parent.Version + " for " + coord.Key())
		coord = coord.WithVersion(l.parent.Version)
	}
	if !coord.HasVersion() {
		return coord, zerr.With(domain.ErrMissingVersion, "coordinate", coord.String())
	}
	return coord, nil
}
