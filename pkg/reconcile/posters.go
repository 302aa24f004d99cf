package reconcile

import (
	"context"
	"fmt"
	"io"
	"net/http"

	mhttp "github.com/pacemeta/pacemeta/pkg/http"
)

// PosterSource fetches season poster images.
type PosterSource interface {
	Fetch(ctx context.Context, seasonNumber int) ([]byte, error)
}

// URLTemplateSource fetches posters from a URL template containing one %d
// verb for the season number.
type URLTemplateSource struct {
	template string
	http     mhttp.HTTPClient
}

// SourceOption is a function that can be used to configure a URLTemplateSource
type SourceOption func(*URLTemplateSource)

// WithHTTPClient sets the http client used to fetch posters
func WithHTTPClient(client mhttp.HTTPClient) SourceOption {
	return func(s *URLTemplateSource) {
		s.http = client
	}
}

func NewURLTemplateSource(template string, opts ...SourceOption) *URLTemplateSource {
	s := &URLTemplateSource{
		template: template,
		http:     mhttp.NewRateLimitedClient(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *URLTemplateSource) Fetch(ctx context.Context, seasonNumber int) ([]byte, error) {
	url := fmt.Sprintf(s.template, seasonNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected poster fetch status: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
