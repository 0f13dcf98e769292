package indexer

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sp0x/nyaarss/config"
	"github.com/sp0x/nyaarss/indexer/classify"
	"github.com/sp0x/nyaarss/indexer/feed"
	"github.com/sp0x/nyaarss/indexer/formatting"
	"github.com/sp0x/nyaarss/indexer/search"
	"github.com/sp0x/nyaarss/indexer/source"
)

var (
	_ Indexer = &Runner{}
)

//go:generate mockgen -source runner.go -destination=mocks/indexer.go -package=mocks
type Indexer interface {
	// Single searches for one episode, batches are left out.
	Single(ctx context.Context, query *search.Query) []search.Release
	// Batch searches for multi-episode releases.
	Batch(ctx context.Context, query *search.Query) []search.Release
	// Movie searches for movies, without any batch filtering.
	Movie(ctx context.Context, query *search.Query) []search.Release
	// Site is the base url of the index.
	Site() string
}

// RunnerOpts is the configuration of a runner. It's immutable once the runner is created.
type RunnerOpts struct {
	BaseURL  string
	Category string
	Filter   string
	Fetcher  source.ContentFetcher
	// Parser defaults to a tolerant parser using Classifier.
	Parser     feed.Parser
	Classifier *classify.Classifier
	Logger     *logrus.Logger
}

// Runner searches a single nyaa-like rss index.
type Runner struct {
	opts       RunnerOpts
	fetcher    source.ContentFetcher
	parser     feed.Parser
	classifier *classify.Classifier
	logger     logrus.FieldLogger
}

// NewRunner creates a runner for the index at opts.BaseURL.
func NewRunner(opts RunnerOpts) (*Runner, error) {
	if opts.Fetcher == nil {
		return nil, fmt.Errorf("a content fetcher is required")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = config.DefaultBaseURL
	}
	if _, err := url.Parse(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", opts.BaseURL, err)
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if opts.Category == "" {
		opts.Category = config.DefaultCategory
	}
	if opts.Filter == "" {
		opts.Filter = config.DefaultFilter
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Classifier == nil {
		opts.Classifier = classify.Default()
	}
	if opts.Parser == nil {
		opts.Parser = feed.NewTolerantParser(feed.Options{
			Classifier: opts.Classifier,
			Logger:     opts.Logger,
		})
	}
	return &Runner{
		opts:       opts,
		fetcher:    opts.Fetcher,
		parser:     opts.Parser,
		classifier: opts.Classifier,
		logger:     opts.Logger.WithFields(logrus.Fields{"site": opts.BaseURL}),
	}, nil
}

func (r *Runner) Site() string {
	return r.opts.BaseURL
}

func (r *Runner) Single(ctx context.Context, query *search.Query) []search.Release {
	keywords, ok := keywordsFor(query, search.ModeSingle)
	if !ok {
		return []search.Release{}
	}
	results := r.Search(ctx, keywords, query.Exclusions)
	singles := make([]search.Release, 0, len(results))
	for _, rel := range results {
		if !r.classifier.IsBatch(rel.Title) {
			singles = append(singles, rel)
		}
	}
	return singles
}

func (r *Runner) Batch(ctx context.Context, query *search.Query) []search.Release {
	keywords, ok := keywordsFor(query, search.ModeBatch)
	if !ok {
		return []search.Release{}
	}
	results := r.Search(ctx, keywords, query.Exclusions)
	batches := make([]search.Release, 0, len(results))
	for _, rel := range results {
		if r.classifier.IsBatch(rel.Title) {
			batches = append(batches, rel.WithType(search.ReleaseTypeBatch))
		}
	}
	return batches
}

func (r *Runner) Movie(ctx context.Context, query *search.Query) []search.Release {
	keywords, ok := keywordsFor(query, search.ModeMovie)
	if !ok {
		return []search.Release{}
	}
	return r.Search(ctx, keywords, query.Exclusions)
}

func keywordsFor(query *search.Query, mode search.Mode) (string, bool) {
	if query == nil {
		return "", false
	}
	return query.Keywords(mode)
}

// SearchURL is the rss url for the given keywords.
func (r *Runner) SearchURL(keywords string) string {
	return fmt.Sprintf("%s/?page=rss&q=%s&c=%s&f=%s",
		r.opts.BaseURL,
		formatting.ComponentEscape(keywords),
		url.QueryEscape(r.opts.Category),
		url.QueryEscape(r.opts.Filter))
}

// Search fetches the feed for the keywords and drops excluded titles.
// Fetch failures are logged and result in no releases.
func (r *Runner) Search(ctx context.Context, keywords string, exclusions []string) []search.Release {
	searchURL := r.SearchURL(keywords)
	logger := r.logger.WithFields(logrus.Fields{"keywords": keywords})
	body, err := r.fetcher.FetchText(ctx, searchURL)
	if err != nil {
		logger.WithFields(logrus.Fields{"url": searchURL, "error": err}).
			Warn("Couldn't fetch search results")
		return []search.Release{}
	}
	releases := r.parser.Parse(body)
	results := search.ExcludeTitles(releases, exclusions)
	logger.WithFields(logrus.Fields{"found": len(releases), "count": len(results)}).
		Debug("Search finished")
	return results
}
