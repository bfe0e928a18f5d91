package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/null993/holidown/internal/logger"
)

// FetchTimeout bounds connect plus read time for one feed download.
const FetchTimeout = 10 * time.Second

// Fetcher downloads calendar feed text over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher returns a Fetcher with the default timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: FetchTimeout},
	}
}

// Fetch downloads the full body of url. A non-2xx response is an error; the
// caller decides how to fall back.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	logger.Info("feed fetch start", "url", url)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetching feed: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading feed body: %w", err)
	}

	logger.Info("feed fetch success", "url", url, "bytes", len(body))
	return string(body), nil
}
