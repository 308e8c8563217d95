package repo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/monday-consulting/modres/internal/core/domain"
	"github.com/monday-consulting/modres/internal/core/ports"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 30 * time.Second

// Fetcher downloads artifacts from a remote repository into the local cache.
// Fetching an already-cached artifact is a no-op; a failed fetch is surfaced
// immediately with no retry. The cache is append-only: existing entries are
// never modified or deleted.
type Fetcher struct {
	baseURL    string
	layout     *Layout
	logger     ports.Logger
	httpClient *http.Client
}

// NewFetcher creates a Fetcher downloading from the given repository base URL.
func NewFetcher(baseURL string, layout *Layout, logger ports.Logger) *Fetcher {
	return newFetcherWithClient(baseURL, layout, logger, &http.Client{Timeout: httpClientTimeout})
}

// newFetcherWithClient creates a Fetcher with a custom http client (used for testing).
func newFetcherWithClient(baseURL string, layout *Layout, logger ports.Logger, client *http.Client) *Fetcher {
	return &Fetcher{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		layout:     layout,
		logger:     logger,
		httpClient: client,
	}
}

// Fetch ensures the artifact's bytes exist at the coordinate's local cache
// path, downloading them from the remote repository when missing.
func (f *Fetcher) Fetch(ctx context.Context, coord domain.Coordinate) error {
	local := f.layout.LocalPath(coord)
	if _, err := os.Stat(local); err == nil {
		return nil
	}

	f.logger.Info("fetching " + coord.String() + " from remote repository")

	url := f.baseURL + "/" + RelativePath(coord)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "coordinate", coord.String())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		fetchErr := zerr.With(domain.ErrFetchFailed, "coordinate", coord.String())
		return zerr.With(fetchErr, "status", resp.Status)
	}

	if err := f.store(local, resp.Body); err != nil {
		return err
	}

	f.recordFetch(coord)
	return nil
}

// store writes the response body to a temporary file and renames it into
// place, so that the cache never holds a partially downloaded artifact.
func (f *Fetcher) store(local string, body io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(local), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheCreateFailed.Error())
	}

	tmp, err := os.CreateTemp(filepath.Dir(local), filepath.Base(local)+".part*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	if _, err := io.Copy(tmp, body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	if err := os.Rename(tmp.Name(), local); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	return nil
}

// indexEntry records the provenance of a fetched artifact.
type indexEntry struct {
	Coordinate string    `json:"coordinate"`
	URL        string    `json:"url"`
	FetchedAt  time.Time `json:"fetchedAt"`
}

// recordFetch writes a provenance entry for the fetched coordinate, keyed by
// the coordinate's xxhash. Index write failures are not critical.
func (f *Fetcher) recordFetch(coord domain.Coordinate) {
	entry := indexEntry{
		Coordinate: coord.String(),
		URL:        f.baseURL + "/" + RelativePath(coord),
		FetchedAt:  time.Now().UTC(),
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	dir := filepath.Join(f.layout.Root(), domain.IndexDirName)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return
	}

	key := strconv.FormatUint(xxhash.Sum64String(coord.String()), 16)
	_ = os.WriteFile(filepath.Join(dir, key+".json"), data, domain.FilePerm)
}
