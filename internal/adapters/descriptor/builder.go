// Package descriptor implements the module descriptor builder on YAML files.
package descriptor

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/monday-consulting/modres/internal/core/domain"
	"github.com/monday-consulting/modres/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Builder implements ports.DescriptorBuilder. Local builds are pure parsing;
// coordinate builds fetch the descriptor artifact into the cache first.
type Builder struct {
	layout  ports.RepositoryLayout
	fetcher ports.ArtifactFetcher
}

// NewBuilder creates a Builder that locates descriptor artifacts via layout
// and materializes missing ones via fetcher.
func NewBuilder(layout ports.RepositoryLayout, fetcher ports.ArtifactFetcher) *Builder {
	return &Builder{layout: layout, fetcher: fetcher}
}

// Build parses the descriptor file at path into a project.
func (b *Builder) Build(path string, opts ports.BuildOptions) (*domain.Project, error) {
	return Parse(path, opts)
}

// BuildFromCoordinate builds a project from the coordinate's descriptor
// artifact. A descriptor missing from the local cache is fetched from the
// remote repository as a side effect.
func (b *Builder) BuildFromCoordinate(ctx context.Context, coord domain.Coordinate, opts ports.BuildOptions) (*domain.Project, error) {
	desc := coord.Descriptor()
	path := b.layout.LocalPath(desc)

	if _, err := os.Stat(path); err != nil {
		if fetchErr := b.fetcher.Fetch(ctx, desc); fetchErr != nil {
			return nil, fetchErr
		}
	}

	return Parse(path, opts)
}

// Parse reads and validates the descriptor file at path.
func Parse(path string, opts ports.BuildOptions) (*domain.Project, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- descriptor paths are derived from trusted roots
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrDescriptorNotFound, "path", path)
		}
		return nil, zerr.Wrap(err, domain.ErrDescriptorReadFailed.Error())
	}

	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, zerr.Wrap(err, domain.ErrDescriptorParseFailed.Error())
	}

	return toProject(filepath.Dir(path), &d, opts)
}

func toProject(baseDir string, d *Descriptor, opts ports.BuildOptions) (*domain.Project, error) {
	if d.Group == "" {
		return nil, zerr.With(domain.ErrMissingGroup, "dir", baseDir)
	}
	if d.Artifact == "" {
		return nil, zerr.With(domain.ErrMissingArtifact, "dir", baseDir)
	}

	packaging := d.Packaging
	if packaging == "" {
		packaging = domain.DefaultPackaging
	}

	version := d.Version
	if version == "" {
		version = opts.DefaultVersion
	}

	project := &domain.Project{
		GroupID:    d.Group,
		ArtifactID: d.Artifact,
		Version:    version,
		Packaging:  packaging,
		BaseDir:    baseDir,
	}

	if d.Build != nil {
		project.BuildDir = resolveBuildDir(baseDir, d.Build.Directory)
		project.FinalName = resolveFinalName(d, version)
	}

	if opts.ResolveDependencies {
		for _, dep := range d.Dependencies {
			coord, err := domain.ParseCoordinate(dep.Coordinate)
			if err != nil {
				return nil, err
			}
			project.Dependencies = append(project.Dependencies, domain.Dependency{
				Coordinate: coord,
				Scopes:     slices.Clone(dep.Scopes),
			})
		}
	}

	return project, nil
}

func resolveBuildDir(baseDir, dir string) string {
	if dir == "" {
		dir = domain.DefaultBuildDirName
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(baseDir, dir)
}

func resolveFinalName(d *Descriptor, version string) string {
	if d.Build.FinalName != "" {
		return d.Build.FinalName
	}
	if version == "" {
		return d.Artifact
	}
	return d.Artifact + "-" + version
}
