// Package catalog defines the capability a concrete media server client must
// implement for reconciliation: fetch a show's season/episode tree and apply
// field updates to single items.
package catalog

import (
	"context"
	"fmt"
)

// Episode is one episode as reported by the media server. Numbers are plain
// integers in server-reported order.
type Episode struct {
	ID      string `json:"id"`
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	AirDate string `json:"airDate"`
}

// Season is one season as reported by the media server. Season 0 is the
// specials bucket.
type Season struct {
	ID       string    `json:"id"`
	Number   int       `json:"number"`
	Title    string    `json:"title"`
	Summary  string    `json:"summary"`
	Episodes []Episode `json:"episodes"`
}

// Show is a media server show tree. It is fetched fresh per reconciliation
// run and never cached across runs.
type Show struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Seasons []Season `json:"seasons"`
}

// Fields carries the item fields to change in a single update. A nil field
// is left untouched.
type Fields struct {
	Title   *string
	Summary *string
	AirDate *string
}

// Empty reports whether no field would change.
func (f Fields) Empty() bool {
	return f.Title == nil && f.Summary == nil && f.AirDate == nil
}

// Names lists the changed field names for logging.
func (f Fields) Names() []string {
	var names []string
	if f.Title != nil {
		names = append(names, "title")
	}
	if f.Summary != nil {
		names = append(names, "summary")
	}
	if f.AirDate != nil {
		names = append(names, "airDate")
	}
	return names
}

// Client is the capability interface a media server adapter implements.
type Client interface {
	// FetchShowTree returns the full season/episode tree of a show. Failure
	// here is fatal to a reconciliation run.
	FetchShowTree(ctx context.Context, showID string) (*Show, error)
	// UpdateItem applies all changed fields of one item in a single call.
	UpdateItem(ctx context.Context, itemID string, fields Fields) error
}

// ArtworkUploader is an optional capability of a Client.
type ArtworkUploader interface {
	UploadArtwork(ctx context.Context, itemID string, image []byte) error
}

// UpdateFailedError wraps a failed item update. The engine records it and
// continues the run.
type UpdateFailedError struct {
	ItemID string
	Err    error
}

func (e *UpdateFailedError) Error() string {
	return fmt.Sprintf("update failed for item %s: %v", e.ItemID, e.Err)
}

func (e *UpdateFailedError) Unwrap() error {
	return e.Err
}
