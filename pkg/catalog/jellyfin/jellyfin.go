// Package jellyfin implements the catalog capability against a Jellyfin
// server.
package jellyfin

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

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
		return nil, fmt.Errorf("parsing jellyfin url: %w", err)
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

type itemsResponse struct {
	Items []item `json:"Items"`
}

type item struct {
	ID           string `json:"Id"`
	Name         string `json:"Name"`
	IndexNumber  *int   `json:"IndexNumber"`
	Overview     string `json:"Overview"`
	PremiereDate string `json:"PremiereDate"`
}

// FetchShowTree assembles the full season/episode tree from the Shows
// endpoints. IndexNumber maps directly to season and episode numbers;
// season 0 is the specials bucket.
func (c *Client) FetchShowTree(ctx context.Context, showID string) (*catalog.Show, error) {
	raw, err := c.getItemRaw(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("fetching show %s: %w", showID, err)
	}

	show := &catalog.Show{ID: showID}
	if name, ok := raw["Name"].(string); ok {
		show.Title = name
	}

	seasons, err := c.getItems(ctx, fmt.Sprintf("/Shows/%s/Seasons", showID), url.Values{"Fields": {"Overview"}})
	if err != nil {
		return nil, fmt.Errorf("fetching seasons of show %s: %w", showID, err)
	}

	for _, s := range seasons {
		season := catalog.Season{
			ID:      s.ID,
			Number:  indexOrZero(s.IndexNumber),
			Title:   s.Name,
			Summary: s.Overview,
		}

		params := url.Values{"SeasonId": {s.ID}, "Fields": {"Overview"}}
		episodes, err := c.getItems(ctx, fmt.Sprintf("/Shows/%s/Episodes", showID), params)
		if err != nil {
			return nil, fmt.Errorf("fetching episodes of season %s: %w", s.ID, err)
		}

		for _, e := range episodes {
			season.Episodes = append(season.Episodes, catalog.Episode{
				ID:      e.ID,
				Number:  indexOrZero(e.IndexNumber),
				Title:   e.Name,
				Summary: e.Overview,
				AirDate: premiereToDate(e.PremiereDate),
			})
		}

		show.Seasons = append(show.Seasons, season)
	}

	return show, nil
}

// UpdateItem fetches the current item, merges the changed fields, and posts
// it back whole. Jellyfin's update endpoint replaces the item, so fields not
// included in the post are cleared; round-tripping the raw document keeps
// everything else intact.
func (c *Client) UpdateItem(ctx context.Context, itemID string, fields catalog.Fields) error {
	raw, err := c.getItemRaw(ctx, itemID)
	if err != nil {
		return &catalog.UpdateFailedError{ItemID: itemID, Err: err}
	}

	if fields.Title != nil {
		raw["Name"] = *fields.Title
	}
	if fields.Summary != nil {
		raw["Overview"] = *fields.Summary
	}
	if fields.AirDate != nil {
		raw["PremiereDate"] = *fields.AirDate + "T00:00:00Z"
	}

	body, err := json.Marshal(raw)
	if err != nil {
		return &catalog.UpdateFailedError{ItemID: itemID, Err: err}
	}

	resp, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/Items/%s", itemID), nil, bytes.NewReader(body), "application/json")
	if err != nil {
		return &catalog.UpdateFailedError{ItemID: itemID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &catalog.UpdateFailedError{ItemID: itemID, Err: fmt.Errorf("unexpected status: %s", resp.Status)}
	}

	return nil
}

// UploadArtwork sets the primary image of an item. Jellyfin expects the
// image bytes base64-encoded in the request body.
func (c *Client) UploadArtwork(ctx context.Context, itemID string, image []byte) error {
	encoded := base64.StdEncoding.EncodeToString(image)
	resp, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/Items/%s/Images/Primary", itemID), nil, strings.NewReader(encoded), "image/jpeg")
	if err != nil {
		return fmt.Errorf("uploading image for item %s: %w", itemID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("uploading image for item %s: unexpected status: %s", itemID, resp.Status)
	}

	return nil
}

func (c *Client) getItemRaw(ctx context.Context, itemID string) (map[string]any, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/Items/%s", itemID), nil, nil, "")
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

	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("decoding item: %w", err)
	}

	return raw, nil
}

func (c *Client) getItems(ctx context.Context, path string, params url.Values) ([]item, error) {
	resp, err := c.do(ctx, http.MethodGet, path, params, nil, "")
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

	var items itemsResponse
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("decoding items: %w", err)
	}

	return items.Items, nil
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body io.Reader, contentType string) (*http.Response, error) {
	// JoinPath keeps any path prefix of the configured base URL, e.g. a
	// server behind a reverse proxy at https://host/jellyfin
	u := c.baseURL.JoinPath(path)
	if params != nil {
		u.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("X-Emby-Token", c.token)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return c.http.Do(req)
}

func indexOrZero(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

// premiereToDate trims Jellyfin's full timestamp down to the date part.
func premiereToDate(premiere string) string {
	if len(premiere) >= 10 {
		return premiere[:10]
	}
	return premiere
}
