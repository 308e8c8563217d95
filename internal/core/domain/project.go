package domain

import (
	"path/filepath"
	"slices"
)

// Origin identifies the resolution tier that produced a project.
type Origin string

const (
	// OriginReactor marks projects found in the current workspace build.
	OriginReactor Origin = "reactor"
	// OriginWorkspace marks projects built from a sibling directory on disk.
	OriginWorkspace Origin = "workspace"
	// OriginRepository marks projects resolved from the artifact repository.
	OriginRepository Origin = "repository"
)

// ArtifactFilter decides whether a sub-artifact of a project is acceptable
// during later transitive filtering done by downstream consumers.
type ArtifactFilter func(Coordinate) bool

// PermissiveFilter accepts every sub-artifact.
func PermissiveFilter(Coordinate) bool { return true }

// Dependency is a dependency declared by a module descriptor, tagged with the
// scopes under which it applies.
type Dependency struct {
	Coordinate Coordinate
	Scopes     []string
}

// AppliesTo reports whether the dependency is applicable under the requested
// scopes. A dependency with no scope tags is always applicable, as is any
// dependency when no scopes are requested.
func (d Dependency) AppliesTo(scopes []string) bool {
	if len(d.Scopes) == 0 || len(scopes) == 0 {
		return true
	}
	for _, want := range scopes {
		if slices.Contains(d.Scopes, want) {
			return true
		}
	}
	return false
}

// Project is a resolved build unit.
//
// A Project is created by the descriptor builder, mutated exactly once to
// bind ArtifactFile (and, for repository-tier resolutions, Parent), and then
// treated as read-only except for the final normalization clone.
type Project struct {
	GroupID    string
	ArtifactID string
	Version    string
	Packaging  string

	// BaseDir is the directory containing the module descriptor.
	BaseDir string
	// BuildDir is the build output directory; empty when the descriptor
	// carries no build metadata.
	BuildDir string
	// FinalName is the base name of the build output artifact.
	FinalName string

	// ArtifactFile is the concrete artifact path, set only after resolution.
	ArtifactFile string
	// Origin records which tier resolved the project.
	Origin Origin

	// Parent is a non-owning back-reference used for defaulting purposes.
	// Clones share it.
	Parent *Project

	// Filter is attached during normalization so that downstream consumers
	// that expect a filter do not reject the project.
	Filter ArtifactFilter

	// Dependencies are the scoped dependency declarations of the module.
	Dependencies []Dependency
}

// Coordinate returns the project's own coordinate.
func (p *Project) Coordinate() Coordinate {
	return Coordinate{
		GroupID:    p.GroupID,
		ArtifactID: p.ArtifactID,
		Extension:  p.Packaging,
		Version:    p.Version,
	}
}

// OutputArtifactPath computes <BuildDir>/<FinalName>.<Packaging>.
// ok is false when the project carries no build output metadata.
func (p *Project) OutputArtifactPath() (path string, ok bool) {
	if p.BuildDir == "" || p.FinalName == "" || p.Packaging == "" {
		return "", false
	}
	return filepath.Join(p.BuildDir, p.FinalName+"."+p.Packaging), true
}

// Clone returns a deep copy of the project. The Parent reference is shared,
// not copied: it is a non-owning back-reference.
func (p *Project) Clone() *Project {
	cp := *p
	cp.Dependencies = make([]Dependency, len(p.Dependencies))
	for i, dep := range p.Dependencies {
		dep.Scopes = slices.Clone(dep.Scopes)
		cp.Dependencies[i] = dep
	}
	return &cp
}
