package ports

import "github.com/monday-consulting/modres/internal/core/domain"

// RepositoryLayout computes local cache paths for coordinates.
// Implementations perform no I/O; paths are deterministic given the cache root.
type RepositoryLayout interface {
	// LocalPath returns the absolute local cache path for the coordinate's
	// artifact.
	LocalPath(coord domain.Coordinate) string
}
