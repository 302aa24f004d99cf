package sheets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/pacemeta/pacemeta/pkg/cache"
	mhttp "github.com/pacemeta/pacemeta/pkg/http"
	"github.com/pacemeta/pacemeta/pkg/logger"
	"go.uber.org/zap"
)

// Sources holds the URLs of the three published dataset exports.
type Sources struct {
	Seasons  string
	Episodes string
	Releases string
}

// Datasets bundles the parsed rows of all three sources.
type Datasets struct {
	Seasons  []Row
	Episodes []Row
	Releases []Row
}

// Client fetches the dataset sources. Raw text is memoized per URL for the
// lifetime of the client, so a session only hits each source once.
type Client struct {
	http    mhttp.HTTPClient
	sources Sources
	raw     *cache.Cache[string, string]
}

// ClientOption is a function that can be used to configure a Client
type ClientOption func(*Client)

// WithHTTPClient sets the http client used to fetch datasets
func WithHTTPClient(client mhttp.HTTPClient) ClientOption {
	return func(c *Client) {
		c.http = client
	}
}

func NewClient(sources Sources, opts ...ClientOption) *Client {
	c := &Client{
		http:    mhttp.NewRateLimitedClient(),
		sources: sources,
		raw:     cache.New[string, string](),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Datasets fetches and parses the three sources. The fetches are independent
// reads, so they are issued concurrently and awaited jointly. Any fetch
// failure is fatal: lookups built from a partial set would silently skip
// everything the missing source covers.
func (c *Client) Datasets(ctx context.Context) (Datasets, error) {
	var ds Datasets

	fetches := []struct {
		name string
		url  string
		dest *[]Row
	}{
		{"seasons", c.sources.Seasons, &ds.Seasons},
		{"episodes", c.sources.Episodes, &ds.Episodes},
		{"releases", c.sources.Releases, &ds.Releases},
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var fetchErr error

	for _, f := range fetches {
		f := f
		wg.Add(1)
		go func() {
			defer wg.Done()
			text, err := c.fetch(ctx, f.url)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				fetchErr = errors.Join(fetchErr, fmt.Errorf("fetching %s dataset: %w", f.name, err))
				return
			}
			*f.dest = Parse(text)
		}()
	}
	wg.Wait()

	if fetchErr != nil {
		return Datasets{}, fetchErr
	}

	log := logger.FromCtx(ctx)
	log.Debug("fetched datasets",
		zap.Int("seasons", len(ds.Seasons)),
		zap.Int("episodes", len(ds.Episodes)),
		zap.Int("releases", len(ds.Releases)))

	return ds, nil
}

func (c *Client) fetch(ctx context.Context, url string) (string, error) {
	return c.raw.GetOrSet(url, func() (string, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", err
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("unexpected dataset fetch status: %s", resp.Status)
		}

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}

		return string(b), nil
	})
}
