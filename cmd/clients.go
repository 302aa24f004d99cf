package cmd

import (
	"fmt"

	"github.com/pacemeta/pacemeta/config"
	"github.com/pacemeta/pacemeta/pkg/catalog"
	"github.com/pacemeta/pacemeta/pkg/catalog/jellyfin"
	"github.com/pacemeta/pacemeta/pkg/catalog/plex"
	mhttp "github.com/pacemeta/pacemeta/pkg/http"
	"github.com/pacemeta/pacemeta/pkg/reconcile"
	"github.com/pacemeta/pacemeta/pkg/sheets"
)

// newCatalogClient builds the adapter for the configured server kind.
func newCatalogClient(cfg config.Config) (catalog.Client, error) {
	httpClient := mhttp.NewRateLimitedClient(
		mhttp.WithBaseBackoff(cfg.Server.BaseBackoff),
		mhttp.WithMaxRetries(cfg.Server.MaxRetries),
	)

	switch cfg.Server.Kind {
	case "plex":
		return plex.New(cfg.Server.URL, cfg.Server.Token, plex.WithHTTPClient(httpClient))
	case "jellyfin":
		return jellyfin.New(cfg.Server.URL, cfg.Server.Token, jellyfin.WithHTTPClient(httpClient))
	default:
		return nil, fmt.Errorf("unknown server kind: %q", cfg.Server.Kind)
	}
}

func newSheetsClient(cfg config.Config) *sheets.Client {
	return sheets.NewClient(sheets.Sources{
		Seasons:  cfg.Datasets.Seasons,
		Episodes: cfg.Datasets.Episodes,
		Releases: cfg.Datasets.Releases,
	})
}

func newEngine(cfg config.Config, client catalog.Client) *reconcile.Engine {
	opts := []reconcile.Option{
		reconcile.WithPacing(reconcile.Pacing{
			Update: cfg.Reconcile.UpdateDelay,
			Season: cfg.Reconcile.SeasonDelay,
		}),
	}

	if cfg.Reconcile.PosterURLTemplate != "" {
		opts = append(opts, reconcile.WithPosterSource(
			reconcile.NewURLTemplateSource(cfg.Reconcile.PosterURLTemplate)))
	}

	return reconcile.New(client, newSheetsClient(cfg), opts...)
}
