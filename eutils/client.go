package eutils

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"
	searchEndpoint = "esearch.fcgi"
	fetchEndpoint  = "efetch.fcgi"

	// All requests go against the pubmed database in XML mode.
	database     = "pubmed"
	responseMode = "xml"
)

// Client wraps the NCBI E-utilities API.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new E-utilities client.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.baseURL = strings.TrimRight(client.baseURL, "/")

	return client, nil
}

// Search runs an esearch request with history enabled and retmax=0, so the
// server caches the full hit list without returning any records. The
// resulting SearchSession carries the total match count and the tokens
// later FetchBatch calls use to address the cached result set.
//
// startDate is required, endDate optional; both use the YYYY/MM/DD format.
func (c *Client) Search(ctx context.Context, term, startDate, endDate string) (SearchSession, error) {
	params := url.Values{
		"db":         {database},
		"retmode":    {responseMode},
		"term":       {term},
		"mindate":    {startDate},
		"retmax":     {"0"},
		"usehistory": {"y"},
		"api_key":    {c.apiKey},
	}
	if endDate != "" {
		params.Set("maxdate", endDate)
	}

	body, err := c.get(ctx, searchEndpoint, params)
	if err != nil {
		return SearchSession{}, err
	}

	var result searchResult
	if err := xml.Unmarshal(body, &result); err != nil {
		return SearchSession{}, &ParseError{Endpoint: searchEndpoint, Field: "eSearchResult", Err: err}
	}
	if result.Count == nil {
		return SearchSession{}, &ParseError{Endpoint: searchEndpoint, Field: "Count"}
	}
	if result.WebEnv == "" {
		return SearchSession{}, &ParseError{Endpoint: searchEndpoint, Field: "WebEnv"}
	}
	if result.QueryKey == "" {
		return SearchSession{}, &ParseError{Endpoint: searchEndpoint, Field: "QueryKey"}
	}

	session := SearchSession{
		Total:    *result.Count,
		WebEnv:   result.WebEnv,
		QueryKey: result.QueryKey,
	}

	c.logger.Debug().
		Int("count", session.Total).
		Str("query_key", session.QueryKey).
		Msg("Search session established")

	return session, nil
}

// FetchBatch retrieves up to retmax records of the cached result set,
// starting at offset retstart, and decodes them into articles. A window
// past the end of the result set yields an empty slice, not an error.
func (c *Client) FetchBatch(ctx context.Context, session SearchSession, retstart, retmax int) ([]Article, error) {
	params := url.Values{
		"db":        {database},
		"retmode":   {responseMode},
		"query_key": {session.QueryKey},
		"WebEnv":    {session.WebEnv},
		"retstart":  {strconv.Itoa(retstart)},
		"retmax":    {strconv.Itoa(retmax)},
		"api_key":   {c.apiKey},
	}

	body, err := c.get(ctx, fetchEndpoint, params)
	if err != nil {
		return nil, err
	}

	var set articleSet
	if err := xml.Unmarshal(body, &set); err != nil {
		return nil, &ParseError{Endpoint: fetchEndpoint, Field: "PubmedArticleSet", Err: err}
	}

	articles := make([]Article, 0, len(set.Articles))
	for _, rec := range set.Articles {
		article := Article{
			PMID:  rec.Citation.PMID,
			Title: rec.Citation.Article.Title,
			Year:  rec.Citation.Article.Journal.Issue.PubDate.Year,
		}
		for _, au := range rec.Citation.Article.Authors.Author {
			article.Authors = append(article.Authors, Author{
				LastName:    au.LastName,
				ForeName:    au.ForeName,
				Initials:    au.Initials,
				Affiliation: au.Affiliation,
			})
		}
		articles = append(articles, article)
	}

	c.logger.Debug().
		Int("retstart", retstart).
		Int("retmax", retmax).
		Int("articles", len(articles)).
		Msg("Fetched article batch")

	return articles, nil
}

// get performs one GET request against an endpoint and returns the raw
// response body. Failures are wrapped as *TransportError.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	requestURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().Str("endpoint", endpoint).Msg("Making E-utilities request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Endpoint: endpoint, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}

	return body, nil
}
