package indexer

import (
	"github.com/sirupsen/logrus"

	"github.com/sp0x/nyaarss/config"
	"github.com/sp0x/nyaarss/indexer/classify"
	"github.com/sp0x/nyaarss/indexer/feed"
	"github.com/sp0x/nyaarss/indexer/source"
)

// NewRunnerFromConfig builds a runner and its web client out of the configuration.
func NewRunnerFromConfig(cfg config.Config, version string) (*Runner, error) {
	fetcher, err := source.NewWebContentFetcherFromConfig(cfg, version)
	if err != nil {
		return nil, err
	}
	return NewRunnerWithFetcher(cfg, fetcher)
}

// NewRunnerWithFetcher builds a runner out of the configuration, using the given fetcher.
func NewRunnerWithFetcher(cfg config.Config, fetcher source.ContentFetcher) (*Runner, error) {
	logger := logrus.StandardLogger()
	classifier := classify.New(classify.OptionsFromConfig(cfg))
	parser, err := feed.New(cfg.GetString("parser"), feed.Options{
		Classifier: classifier,
		Trackers:   cfg.GetStringSlice("trackers"),
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}
	return NewRunner(RunnerOpts{
		BaseURL:    cfg.GetString("base_url"),
		Category:   cfg.GetString("category"),
		Filter:     cfg.GetString("filter"),
		Fetcher:    fetcher,
		Parser:     parser,
		Classifier: classifier,
		Logger:     logger,
	})
}
