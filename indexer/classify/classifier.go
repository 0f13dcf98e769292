// Package classify holds the heuristics that label releases. They are approximations:
// "s1" in an unrelated word or "1-" in an episode range still counts as a batch.
package classify

import (
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/sp0x/nyaarss/config"
)

const (
	trustedCategoryMarker = "trusted"
	verifiedTitleMarker   = "✓"
)

// Options is the classification policy.
type Options struct {
	BatchKeywords []string
	// A release with more seeders than this is considered verified.
	TrustedSeeders int
}

// DefaultOptions returns the stock batch keywords and seeder threshold.
func DefaultOptions() Options {
	return Options{
		BatchKeywords:  config.DefaultBatchKeywords,
		TrustedSeeders: config.DefaultTrustedSeeders,
	}
}

// OptionsFromConfig reads the policy from config, falling back to defaults for missing keys.
func OptionsFromConfig(cfg config.Config) Options {
	opts := DefaultOptions()
	if kw := cfg.GetStringSlice("batch_keywords"); len(kw) > 0 {
		opts.BatchKeywords = kw
	}
	if cfg.Get("trusted_seeders") != nil {
		opts.TrustedSeeders = cfg.GetInt("trusted_seeders")
	}
	return opts
}

type Classifier struct {
	keywords       *linkedhashset.Set
	trustedSeeders int
}

func New(opts Options) *Classifier {
	keywords := linkedhashset.New()
	for _, kw := range opts.BatchKeywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			keywords.Add(kw)
		}
	}
	return &Classifier{
		keywords:       keywords,
		trustedSeeders: opts.TrustedSeeders,
	}
}

// Default creates a classifier with the stock policy.
func Default() *Classifier {
	return New(DefaultOptions())
}

// Keywords returns the batch keywords, in the order they were configured.
func (c *Classifier) Keywords() []string {
	values := c.keywords.Values()
	keywords := make([]string, len(values))
	for i, v := range values {
		keywords[i] = v.(string)
	}
	return keywords
}

// IsBatch whether the title looks like it contains multiple episodes.
func (c *Classifier) IsBatch(title string) bool {
	lowered := strings.ToLower(title)
	it := c.keywords.Iterator()
	for it.Next() {
		if strings.Contains(lowered, it.Value().(string)) {
			return true
		}
	}
	return false
}

// IsVerified whether any trust signal is present: a trusted category, a checkmark in the title
// or enough seeders.
func (c *Classifier) IsVerified(category, title string, seeders int) bool {
	switch {
	case strings.Contains(strings.ToLower(category), trustedCategoryMarker):
		return true
	case strings.Contains(title, verifiedTitleMarker):
		return true
	case seeders > c.trustedSeeders:
		return true
	}
	return false
}
