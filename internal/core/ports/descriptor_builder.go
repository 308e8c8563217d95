package ports

import (
	"context"

	"github.com/monday-consulting/modres/internal/core/domain"
)

// BuildOptions configure a descriptor build.
type BuildOptions struct {
	// ResolveDependencies controls whether the declared dependencies of the
	// descriptor are parsed into the resulting project.
	ResolveDependencies bool

	// DefaultVersion is the version assumed when the descriptor does not name
	// one. Workspace members inherit their root's version this way.
	DefaultVersion string
}

// DescriptorBuilder builds a Project from module descriptor metadata.
//
//go:generate mockgen -source=descriptor_builder.go -destination=mocks/mock_descriptor_builder.go -package=mocks
type DescriptorBuilder interface {
	// Build parses the descriptor file at path into a Project.
	// It fails when the file is absent or malformed.
	Build(path string, opts BuildOptions) (*domain.Project, error)

	// BuildFromCoordinate builds a Project from the given coordinate's
	// descriptor artifact, fetching the descriptor into the local cache as a
	// side effect when it is not present locally.
	BuildFromCoordinate(ctx context.Context, coord domain.Coordinate, opts BuildOptions) (*domain.Project, error)
}
