package harvest

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jordanbk/pubmed-scraper/eutils"
)

const (
	// DefaultBatchSize is the number of articles requested per fetch.
	DefaultBatchSize = 500

	// DefaultDelay is the pause after each batch request, keeping the
	// request rate within NCBI limits.
	DefaultDelay = 100 * time.Millisecond

	// previewRowCap bounds accumulation in dry-run mode.
	previewRowCap = 10
)

// Options configure a Harvester run.
type Options struct {
	// RecordLimit caps the number of articles processed. 0 means no limit.
	RecordLimit int
	// BatchSize is the window size per fetch request.
	BatchSize int
	// DryRun stops accumulation once the preview row cap is reached.
	DryRun bool
	// Delay is the pause after each completed batch request.
	Delay time.Duration
	// OnProgress, when set, is called after each completed batch with the
	// bounded article counter and the retrieval target.
	OnProgress func(processed, target int)
}

// Harvester pages through a cached search result set and flattens the
// returned articles into per-author rows. Retrieval is strictly
// sequential: one request in flight, one pause between batches.
type Harvester struct {
	client BatchClient
	logger zerolog.Logger
	opts   Options
}

// NewHarvester creates a Harvester. Zero-valued options fall back to the
// package defaults.
func NewHarvester(client BatchClient, logger zerolog.Logger, opts Options) *Harvester {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.Delay == 0 {
		opts.Delay = DefaultDelay
	}

	return &Harvester{
		client: client,
		logger: logger,
		opts:   opts,
	}
}

// Run retrieves the result set referenced by session in fixed-size windows
// and returns the accumulated rows.
//
// The per-article order is fixed: the dry-run row cap is checked first,
// then the record limit; either one returns immediately without touching
// the current batch's remaining articles. An article's author list is
// always appended whole, so in dry-run the returned rows can overshoot the
// cap by the tail of the last article.
//
// A transport failure aborts the run and discards everything accumulated
// so far. Nothing is retried.
func (h *Harvester) Run(ctx context.Context, session eutils.SearchSession) ([]Row, error) {
	target := session.Total
	if h.opts.RecordLimit > 0 && h.opts.RecordLimit < target {
		target = h.opts.RecordLimit
	}

	progressTarget := target
	if h.opts.DryRun {
		progressTarget = previewRowCap
	}

	h.logger.Info().
		Int("total", session.Total).
		Int("target", target).
		Int("batch_size", h.opts.BatchSize).
		Bool("dry_run", h.opts.DryRun).
		Msg("Starting article retrieval")

	var rows []Row
	processed := 0

	for retstart := 0; retstart < target; retstart += h.opts.BatchSize {
		window := h.opts.BatchSize
		if remaining := target - processed; remaining < window {
			window = remaining
		}

		articles, err := h.client.FetchBatch(ctx, session, retstart, window)
		if err != nil {
			return nil, err
		}

		for _, article := range articles {
			if h.opts.DryRun && len(rows) >= previewRowCap {
				h.logger.Info().
					Int("rows", len(rows)).
					Int("articles", processed).
					Msg("Preview cap reached")
				return rows, nil
			}
			if h.opts.RecordLimit > 0 && processed >= h.opts.RecordLimit {
				return rows, nil
			}

			rows = append(rows, Flatten(article)...)
			processed++
		}

		h.reportProgress(processed, progressTarget)
		h.logger.Debug().
			Int("retstart", retstart).
			Int("batch_articles", len(articles)).
			Int("processed", processed).
			Int("rows", len(rows)).
			Msg("Processed batch")

		time.Sleep(h.opts.Delay)
	}

	return rows, nil
}

// reportProgress advances the caller's progress display, clamped to the
// target so a final short batch never overshoots it.
func (h *Harvester) reportProgress(processed, target int) {
	if h.opts.OnProgress == nil {
		return
	}
	if processed > target {
		processed = target
	}
	h.opts.OnProgress(processed, target)
}
