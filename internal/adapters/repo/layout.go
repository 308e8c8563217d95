// Package repo implements the local repository cache layout and the remote
// artifact fetcher.
package repo

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/monday-consulting/modres/internal/core/domain"
)

// Layout computes cache paths using the repository path convention:
// <group as path>/<artifact>/<version>/<artifact>-<version>[-classifier].<extension>.
type Layout struct {
	root string
}

// NewLayout creates a Layout rooted at the given cache directory.
func NewLayout(root string) *Layout {
	return &Layout{root: filepath.Clean(root)}
}

// LocalPath returns the absolute local cache path for the coordinate.
func (l *Layout) LocalPath(c domain.Coordinate) string {
	return filepath.Join(l.root, filepath.FromSlash(RelativePath(c)))
}

// Root returns the cache root directory.
func (l *Layout) Root() string {
	return l.root
}

// RelativePath returns the coordinate's path relative to the cache root,
// with forward slashes. The same path is the coordinate's URL suffix on the
// remote repository.
func RelativePath(c domain.Coordinate) string {
	name := c.ArtifactID + "-" + c.Version
	if c.Classifier != "" {
		name += "-" + c.Classifier
	}
	ext := c.Extension
	if ext == "" {
		ext = domain.DefaultExtension
	}
	return path.Join(
		strings.ReplaceAll(c.GroupID, ".", "/"),
		c.ArtifactID,
		c.Version,
		name+"."+ext,
	)
}
