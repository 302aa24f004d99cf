// Package reconcile walks a show's season/episode tree, computes per-item
// field diffs against the curated lookups, and drives the sequenced update
// loop with cancellation, dry-run, and pacing.
package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pacemeta/pacemeta/pkg/catalog"
	"github.com/pacemeta/pacemeta/pkg/logger"
	"github.com/pacemeta/pacemeta/pkg/lookup"
	"github.com/pacemeta/pacemeta/pkg/machine"
	"github.com/pacemeta/pacemeta/pkg/sheets"
	"go.uber.org/zap"
)

// State is the lifecycle state of one reconciliation run.
type State string

const (
	StateIdle            State = "idle"
	StateLoadingLookups  State = "loading_lookups"
	StateFetchingCatalog State = "fetching_catalog"
	StateProcessing      State = "processing"
	StateCompleted       State = "completed"
	StateCancelled       State = "cancelled"
	StateFailed          State = "failed"
)

func newRunMachine() *machine.StateMachine[State] {
	return machine.New(StateIdle,
		// lookups are memoized per session, so a later run may skip
		// straight to fetching the catalog
		machine.From(StateIdle).To(StateLoadingLookups, StateFetchingCatalog),
		machine.From(StateLoadingLookups).To(StateFetchingCatalog, StateFailed),
		machine.From(StateFetchingCatalog).To(StateProcessing, StateFailed),
		machine.From(StateProcessing).To(StateCompleted, StateCancelled),
	)
}

// Pacing spaces out live updates to respect downstream rate limits. A zero
// duration disables the corresponding delay.
type Pacing struct {
	Update time.Duration
	Season time.Duration
}

var DefaultPacing = Pacing{
	Update: 500 * time.Millisecond,
	Season: 2 * time.Second,
}

// Change is one computed update, applied or proposed.
type Change struct {
	ItemID string
	Key    string
	Fields catalog.Fields
}

// Result summarizes a finished run. Counts are reported even on
// cancellation.
type Result struct {
	RunID    string
	State    State
	Updated  int
	Skipped  int
	Failed   int
	Posters  int
	Proposed []Change
}

// DatasetProvider supplies the parsed curated datasets.
type DatasetProvider interface {
	Datasets(ctx context.Context) (sheets.Datasets, error)
}

// Engine owns the lookup tables for the duration of a session and drives
// reconciliation runs against a catalog client.
type Engine struct {
	catalog  catalog.Client
	datasets DatasetProvider
	posters  PosterSource
	pacing   Pacing

	mu  sync.Mutex
	set *lookup.Set
}

// Option is a function that can be used to configure an Engine
type Option func(*Engine)

// WithPacing sets the update and season delays
func WithPacing(p Pacing) Option {
	return func(e *Engine) {
		e.pacing = p
	}
}

// WithPosterSource sets the source of season poster images
func WithPosterSource(ps PosterSource) Option {
	return func(e *Engine) {
		e.posters = ps
	}
}

func New(catalogClient catalog.Client, datasets DatasetProvider, opts ...Option) *Engine {
	e := &Engine{
		catalog:  catalogClient,
		datasets: datasets,
		pacing:   DefaultPacing,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run reconciles one show. Per-item failures are isolated and never abort
// the run; only the lookup-dataset fetch and the initial catalog fetch are
// fatal. Cancellation is cooperative and checked at season and episode
// boundaries only; an update already in flight is not interrupted.
func (e *Engine) Run(ctx context.Context, showID string, opts Options) (*Result, error) {
	res := &Result{RunID: uuid.NewString(), State: StateIdle}

	log := logger.FromCtx(ctx).With("run_id", res.RunID, "show_id", showID)
	ctx = logger.WithCtx(ctx, log)

	sm := newRunMachine()

	set, err := e.lookups(ctx, sm)
	if err != nil {
		_ = sm.Transition(StateFailed)
		res.State = StateFailed
		log.Error("failed to load lookups", zap.Error(err))
		return res, fmt.Errorf("loading lookups: %w", err)
	}

	if err := sm.Transition(StateFetchingCatalog); err != nil {
		return res, err
	}

	show, err := e.catalog.FetchShowTree(ctx, showID)
	if err != nil {
		_ = sm.Transition(StateFailed)
		res.State = StateFailed
		log.Error("failed to fetch catalog tree", zap.Error(err))
		return res, fmt.Errorf("fetching catalog: %w", err)
	}

	if err := sm.Transition(StateProcessing); err != nil {
		return res, err
	}

	log.Infow("processing show", "title", show.Title, "seasons", len(show.Seasons))

	cancelled := false

processing:
	for _, season := range show.Seasons {
		if ctx.Err() != nil {
			cancelled = true
			break
		}

		e.processSeason(ctx, res, season, set, opts)

		for _, episode := range season.Episodes {
			if ctx.Err() != nil {
				cancelled = true
				break processing
			}

			e.processEpisode(ctx, res, episode, season.Number, set, opts)
		}

		if !opts.DryRun {
			e.wait(ctx, e.pacing.Season)
		}
	}

	final := StateCompleted
	if cancelled {
		final = StateCancelled
		log.Warn("run cancelled, keeping updates applied so far")
	}

	if err := sm.Transition(final); err != nil {
		return res, err
	}
	res.State = sm.Current()

	log.Infow("run finished",
		"state", res.State,
		"updated", res.Updated,
		"skipped", res.Skipped,
		"failed", res.Failed,
		"posters", res.Posters)

	return res, nil
}

// lookups builds the lookup set on first use and reuses it for every later
// run in the session.
func (e *Engine) lookups(ctx context.Context, sm *machine.StateMachine[State]) (*lookup.Set, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.set != nil {
		return e.set, nil
	}

	if err := sm.Transition(StateLoadingLookups); err != nil {
		return nil, err
	}

	ds, err := e.datasets.Datasets(ctx)
	if err != nil {
		return nil, err
	}

	e.set = lookup.BuildSet(ctx, ds)

	logger.FromCtx(ctx).Infow("built lookups",
		"seasons", len(e.set.Seasons),
		"episodes", len(e.set.Episodes),
		"releases", len(e.set.Releases))

	return e.set, nil
}

func (e *Engine) processSeason(ctx context.Context, res *Result, season catalog.Season, set *lookup.Set, opts Options) {
	log := logger.FromCtx(ctx).With("season", season.Number)

	info, ok := set.Seasons[season.Number]
	if ok {
		fields := seasonFields(season, info, opts)
		if !fields.Empty() {
			e.apply(ctx, res, Change{
				ItemID: season.ID,
				Key:    fmt.Sprintf("season %d", season.Number),
				Fields: fields,
			}, opts)
		}
	} else {
		log.Debug("season not present in season map")
	}

	if opts.Posters {
		e.uploadPoster(ctx, res, season, opts)
	}
}

func (e *Engine) processEpisode(ctx context.Context, res *Result, episode catalog.Episode, seasonNumber int, set *lookup.Set, opts Options) {
	key := lookup.EpisodeKey(seasonNumber, episode.Number)
	log := logger.FromCtx(ctx).With("episode", key)

	fields, found := episodeFields(episode, seasonNumber, set, opts)
	if !found {
		res.Skipped++
		log.Warn("no lookup entry for episode, skipping")
		return
	}

	if fields.Empty() {
		log.Info("no updates needed")
		return
	}

	e.apply(ctx, res, Change{ItemID: episode.ID, Key: key, Fields: fields}, opts)
}

// apply performs one item update, or logs it in dry-run mode. All changed
// fields go through a single UpdateItem call.
func (e *Engine) apply(ctx context.Context, res *Result, change Change, opts Options) {
	log := logger.FromCtx(ctx)

	res.Proposed = append(res.Proposed, change)

	if opts.DryRun {
		log.Infow("dry run, would update item", "item", change.Key, "fields", change.Fields.Names())
		return
	}

	if err := e.catalog.UpdateItem(ctx, change.ItemID, change.Fields); err != nil {
		res.Failed++
		log.Errorw("failed to update item", "item", change.Key, zap.Error(err))
		return
	}

	res.Updated++
	log.Infow("updated item", "item", change.Key, "fields", change.Fields.Names())

	e.wait(ctx, e.pacing.Update)
}

// uploadPoster fetches and uploads one season poster when the adapter
// supports artwork and a source is configured. Failures warn and never
// abort the run.
func (e *Engine) uploadPoster(ctx context.Context, res *Result, season catalog.Season, opts Options) {
	log := logger.FromCtx(ctx).With("season", season.Number)

	uploader, ok := e.catalog.(catalog.ArtworkUploader)
	if !ok {
		log.Debug("catalog client does not support artwork upload")
		return
	}

	if e.posters == nil {
		log.Debug("no poster source configured")
		return
	}

	if opts.DryRun {
		log.Info("dry run, would upload season poster")
		return
	}

	image, err := e.posters.Fetch(ctx, season.Number)
	if err != nil {
		log.Warnw("failed to fetch season poster", zap.Error(err))
		return
	}

	if err := uploader.UploadArtwork(ctx, season.ID, image); err != nil {
		log.Warnw("failed to upload season poster", zap.Error(err))
		return
	}

	res.Posters++
	log.Infow("uploaded season poster", "size", humanize.Bytes(uint64(len(image))))
}

// wait pauses between live updates. The wait itself is interruptible; the
// cancellation is still only acted on at the next loop boundary.
func (e *Engine) wait(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
