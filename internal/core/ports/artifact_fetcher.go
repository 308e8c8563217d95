package ports

import (
	"context"

	"github.com/monday-consulting/modres/internal/core/domain"
)

// ArtifactFetcher ensures an artifact's bytes exist in the local cache.
//
//go:generate mockgen -source=artifact_fetcher.go -destination=mocks/mock_artifact_fetcher.go -package=mocks
type ArtifactFetcher interface {
	// Fetch downloads the artifact for the coordinate into the local cache.
	// Fetching an already-cached artifact is a no-op. A failed fetch is
	// surfaced immediately; there is no built-in retry.
	Fetch(ctx context.Context, coord domain.Coordinate) error
}
