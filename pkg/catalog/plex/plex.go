// Package plex implements the catalog capability against a Plex Media
// Server.
package plex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pacemeta/pacemeta/pkg/catalog"
	mhttp "github.com/pacemeta/pacemeta/pkg/http"
)

type Client struct {
	baseURL *url.URL
	token   string
	http    mhttp.HTTPClient
}

// ClientOption is a function that can be used to configure a Client
type ClientOption func(*Client)

// WithHTTPClient sets the http client to use for the client
func WithHTTPClient(client mhttp.HTTPClient) ClientOption {
	return func(c *Client) {
		c.http = client
	}
}

func New(baseURL, token string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing plex url: %w", err)
	}

	c := &Client{
		baseURL: u,
		token:   token,
		http:    mhttp.NewRateLimitedClient(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// mediaContainer is the envelope of every Plex metadata response.
type mediaContainer struct {
	MediaContainer struct {
		Metadata []metadataItem `json:"Metadata"`
	} `json:"MediaContainer"`
}

type metadataItem struct {
	RatingKey             string `json:"ratingKey"`
	Type                  string `json:"type"`
	Index                 int    `json:"index"`
	Title                 string `json:"title"`
	Summary               string `json:"summary"`
	OriginallyAvailableAt string `json:"originallyAvailableAt"`
}

// FetchShowTree fetches a show and walks its children to assemble the full
// season/episode tree. Numbers come from Plex's index attribute; season 0 is
// the specials bucket.
func (c *Client) FetchShowTree(ctx context.Context, showID string) (*catalog.Show, error) {
	showItem, err := c.getMetadata(ctx, fmt.Sprintf("/library/metadata/%s", showID))
	if err != nil {
		return nil, fmt.Errorf("fetching show %s: %w", showID, err)
	}

	show := &catalog.Show{
		ID:    showItem.RatingKey,
		Title: showItem.Title,
	}

	seasonItems, err := c.getChildren(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("fetching seasons of show %s: %w", showID, err)
	}

	for _, s := range seasonItems {
		season := catalog.Season{
			ID:      s.RatingKey,
			Number:  s.Index,
			Title:   s.Title,
			Summary: s.Summary,
		}

		episodeItems, err := c.getChildren(ctx, s.RatingKey)
		if err != nil {
			return nil, fmt.Errorf("fetching episodes of season %s: %w", s.RatingKey, err)
		}

		for _, e := range episodeItems {
			season.Episodes = append(season.Episodes, catalog.Episode{
				ID:      e.RatingKey,
				Number:  e.Index,
				Title:   e.Title,
				Summary: e.Summary,
				AirDate: e.OriginallyAvailableAt,
			})
		}

		show.Seasons = append(show.Seasons, season)
	}

	return show, nil
}

// UpdateItem applies all changed fields in one PUT. Updated fields are also
// locked so a scheduled library refresh doesn't revert them.
func (c *Client) UpdateItem(ctx context.Context, itemID string, fields catalog.Fields) error {
	params := url.Values{}
	setField := func(name, value string) {
		params.Set(name+".value", value)
		params.Set(name+".locked", "1")
	}

	if fields.Title != nil {
		setField("title", *fields.Title)
	}
	if fields.Summary != nil {
		setField("summary", *fields.Summary)
	}
	if fields.AirDate != nil {
		setField("originallyAvailableAt", *fields.AirDate)
	}

	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/library/metadata/%s", itemID), params, nil, "")
	if err != nil {
		return &catalog.UpdateFailedError{ItemID: itemID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &catalog.UpdateFailedError{ItemID: itemID, Err: fmt.Errorf("unexpected status: %s", resp.Status)}
	}

	return nil
}

// UploadArtwork uploads a poster image for an item.
func (c *Client) UploadArtwork(ctx context.Context, itemID string, image []byte) error {
	resp, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/library/metadata/%s/posters", itemID), nil, bytes.NewReader(image), "image/jpeg")
	if err != nil {
		return fmt.Errorf("uploading poster for item %s: %w", itemID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("uploading poster for item %s: unexpected status: %s", itemID, resp.Status)
	}

	return nil
}

func (c *Client) getMetadata(ctx context.Context, path string) (metadataItem, error) {
	items, err := c.getItems(ctx, path)
	if err != nil {
		return metadataItem{}, err
	}

	if len(items) == 0 {
		return metadataItem{}, fmt.Errorf("no metadata at %s", path)
	}

	return items[0], nil
}

func (c *Client) getChildren(ctx context.Context, ratingKey string) ([]metadataItem, error) {
	return c.getItems(ctx, fmt.Sprintf("/library/metadata/%s/children", ratingKey))
}

func (c *Client) getItems(ctx context.Context, path string) ([]metadataItem, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var container mediaContainer
	if err := json.Unmarshal(b, &container); err != nil {
		return nil, fmt.Errorf("decoding media container: %w", err)
	}

	return container.MediaContainer.Metadata, nil
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body io.Reader, contentType string) (*http.Response, error) {
	// JoinPath keeps any path prefix of the configured base URL, e.g. a
	// server behind a reverse proxy at https://host/plex
	u := c.baseURL.JoinPath(path)
	if params != nil {
		u.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("X-Plex-Token", c.token)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return c.http.Do(req)
}
