package feed

import (
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	log "github.com/sirupsen/logrus"

	"github.com/sp0x/nyaarss/indexer/formatting"
	"github.com/sp0x/nyaarss/indexer/search"
)

// StrictParser decodes the whole document with gofeed. A feed that isn't well formed yields
// no releases at all.
type StrictParser struct {
	options Options
	parser  *gofeed.Parser
	title   *formatting.TagPattern
}

func NewStrictParser(opts Options) *StrictParser {
	return &StrictParser{
		options: opts.withDefaults(),
		parser:  gofeed.NewParser(),
		title:   formatting.NewTagPattern(opts.withDefaults().Fields.Title),
	}
}

func (p *StrictParser) Parse(body string) []search.Release {
	now := p.options.Now()
	parsed, err := p.parser.ParseString(body)
	if err != nil {
		p.options.Logger.WithError(err).Warn("Couldn't parse feed")
		return []search.Release{}
	}
	// gofeed decodes plain titles but not CDATA ones, so titles are taken from the item text
	// whenever the items line up with it.
	fragments := formatting.ItemFragments(body)
	if len(fragments) != len(parsed.Items) {
		fragments = nil
	}
	releases := make([]search.Release, 0, len(parsed.Items))
	for i, item := range parsed.Items {
		rawTitle := ""
		if fragments != nil {
			rawTitle, _ = p.title.Extract(fragments[i])
		}
		release, err := p.parseItem(item, rawTitle, now)
		if err != nil {
			p.options.Logger.WithFields(log.Fields{"item": i, "error": err}).
				Debug("Skipping feed item")
			continue
		}
		releases = append(releases, release)
	}
	return releases
}

// parseItem builds a release from a gofeed item. Without a raw title the already decoded
// gofeed title is used.
func (p *StrictParser) parseItem(item *gofeed.Item, rawTitle string, now time.Time) (search.Release, error) {
	f := p.options.Fields
	title, decoded := rawTitle, false
	if title == "" {
		title, decoded = strings.TrimSpace(item.Title), true
	}
	if title == "" {
		return search.Release{}, ErrMissingTitle
	}
	hash := extensionValue(item.Extensions, f.InfoHash)
	if hash == "" {
		return search.Release{}, ErrMissingHash
	}
	pubDate := item.Published
	if item.PublishedParsed != nil {
		pubDate = item.PublishedParsed.Format(time.RFC1123Z)
	}
	return buildRelease(itemValues{
		rawTitle:     title,
		titleDecoded: decoded,
		hash:         hash,
		link:         strings.TrimSpace(item.Link),
		pubDate:      pubDate,
		seeders:      extensionValue(item.Extensions, f.Seeders),
		leechers:     extensionValue(item.Extensions, f.Leechers),
		downloads:    extensionValue(item.Extensions, f.Downloads),
		size:         extensionValue(item.Extensions, f.Size),
		category:     extensionValue(item.Extensions, f.Category),
	}, p.options, now), nil
}

// extensionValue looks up a namespaced field like "nyaa:seeders", ignoring case.
func extensionValue(extensions ext.Extensions, field string) string {
	parts := strings.SplitN(field, ":", 2)
	if len(parts) != 2 {
		return ""
	}
	for prefix, fields := range extensions {
		if !strings.EqualFold(prefix, parts[0]) {
			continue
		}
		for name, values := range fields {
			if strings.EqualFold(name, parts[1]) && len(values) > 0 {
				return strings.TrimSpace(values[0].Value)
			}
		}
	}
	return ""
}
