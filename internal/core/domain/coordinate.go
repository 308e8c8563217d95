// Package domain contains the core value types of the module resolver.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

const (
	// DefaultExtension is the artifact extension assumed when a coordinate
	// does not name one.
	DefaultExtension = "tgz"

	// DescriptorExtension is the extension of the module descriptor artifact
	// stored next to the main artifact in the repository.
	DescriptorExtension = "yaml"
)

// Coordinate identifies a single artifact to resolve.
//
// Identity for matching purposes is (GroupID, ArtifactID). The version may be
// empty; it is inferred during repository-tier resolution.
type Coordinate struct {
	GroupID    string
	ArtifactID string
	Classifier string
	Extension  string
	Version    string
}

// ParseCoordinate parses a coordinate string in one of the forms
//
//	group:artifact
//	group:artifact:version
//	group:artifact:extension:version
//	group:artifact:extension:classifier:version
//
// into a Coordinate. The extension defaults to DefaultExtension.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(s, ":")
	for _, p := range parts {
		if p == "" {
			return Coordinate{}, zerr.With(ErrInvalidCoordinate, "coordinate", s)
		}
	}

	switch len(parts) {
	case 2:
		return Coordinate{GroupID: parts[0], ArtifactID: parts[1], Extension: DefaultExtension}, nil
	case 3:
		return Coordinate{GroupID: parts[0], ArtifactID: parts[1], Extension: DefaultExtension, Version: parts[2]}, nil
	case 4:
		return Coordinate{GroupID: parts[0], ArtifactID: parts[1], Extension: parts[2], Version: parts[3]}, nil
	case 5:
		return Coordinate{GroupID: parts[0], ArtifactID: parts[1], Extension: parts[2], Classifier: parts[3], Version: parts[4]}, nil
	default:
		return Coordinate{}, zerr.With(ErrInvalidCoordinate, "coordinate", s)
	}
}

// Key returns the (group, artifact) identity used for reactor matching.
func (c Coordinate) Key() string {
	return c.GroupID + ":" + c.ArtifactID
}

// HasVersion reports whether the coordinate carries a version.
func (c Coordinate) HasVersion() bool {
	return c.Version != ""
}

// WithVersion returns a copy of the coordinate with the given version bound.
// A coordinate with an inferred version supersedes one with an empty version.
func (c Coordinate) WithVersion(version string) Coordinate {
	c.Version = version
	return c
}

// Descriptor returns the coordinate of the module descriptor artifact that
// accompanies this coordinate in the repository.
func (c Coordinate) Descriptor() Coordinate {
	c.Extension = DescriptorExtension
	return c
}

// String renders the coordinate in group:artifact[:extension[:classifier]][:version] form.
func (c Coordinate) String() string {
	parts := []string{c.GroupID, c.ArtifactID}
	if c.Extension != "" {
		parts = append(parts, c.Extension)
	}
	if c.Classifier != "" {
		parts = append(parts, c.Classifier)
	}
	if c.Version != "" {
		parts = append(parts, c.Version)
	}
	return strings.Join(parts, ":")
}
