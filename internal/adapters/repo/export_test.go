package repo

import (
	"net/http"

	"github.com/monday-consulting/modres/internal/core/ports"
)

// NewFetcherWithClient exposes the client-injecting constructor for tests.
func NewFetcherWithClient(baseURL string, layout *Layout, logger ports.Logger, client *http.Client) *Fetcher {
	return newFetcherWithClient(baseURL, layout, logger, client)
}
