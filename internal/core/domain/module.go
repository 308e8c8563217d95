package domain

// Declaration is a logical module declaration: the coordinates to resolve and
// the scopes under which they were requested.
type Declaration struct {
	Coordinates []Coordinate
	Scopes      []string
}

// Module is the result of resolving a Declaration.
//
// The Projects sequence mirrors the coordinate order; after a successful
// resolution every requested coordinate maps to exactly one project.
type Module struct {
	Coordinates []Coordinate
	Scopes      []string
	Projects    []*Project
}

// BuildContext carries the ambient state of the current build.
type BuildContext struct {
	// Current is the overriding parent project of the resolution: the module
	// the tool is invoked in. Its Parent, when present, is the workspace root.
	Current *Project

	// Reactor is the read-only list of projects participating in the current
	// workspace build. It is never mutated during resolution.
	Reactor []*Project

	// CacheRoot is the local repository cache directory.
	CacheRoot string

	// RepositoryURL is the remote repository base URL.
	RepositoryURL string
}

// Root returns the grandparent-level root project of the build, if any.
func (b *BuildContext) Root() *Project {
	if b.Current == nil {
		return nil
	}
	return b.Current.Parent
}
