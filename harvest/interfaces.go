package harvest

import (
	"context"

	"github.com/jordanbk/pubmed-scraper/eutils"
)

// BatchClient fetches one window of a cached search result set. Implemented
// by *eutils.Client; tests substitute fakes.
type BatchClient interface {
	FetchBatch(ctx context.Context, session eutils.SearchSession, retstart, retmax int) ([]eutils.Article, error)
}
