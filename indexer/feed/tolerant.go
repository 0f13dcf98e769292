package feed

import (
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sp0x/nyaarss/indexer/formatting"
	"github.com/sp0x/nyaarss/indexer/search"
	"github.com/sp0x/nyaarss/indexer/utils"
)

// TolerantParser scans item fragments with patterns instead of decoding the document,
// so a broken item or envelope doesn't take the rest of the feed down with it.
type TolerantParser struct {
	options Options

	title     *formatting.TagPattern
	link      *formatting.TagPattern
	pubDate   *formatting.TagPattern
	seeders   *formatting.TagPattern
	leechers  *formatting.TagPattern
	downloads *formatting.TagPattern
	size      *formatting.TagPattern
	infoHash  *formatting.TagPattern
	category  *formatting.TagPattern
}

func NewTolerantParser(opts Options) *TolerantParser {
	opts = opts.withDefaults()
	f := opts.Fields
	return &TolerantParser{
		options:   opts,
		title:     formatting.NewTagPattern(f.Title),
		link:      formatting.NewTagPattern(f.Link),
		pubDate:   formatting.NewTagPattern(f.PubDate),
		seeders:   formatting.NewTagPattern(f.Seeders),
		leechers:  formatting.NewTagPattern(f.Leechers),
		downloads: formatting.NewTagPattern(f.Downloads),
		size:      formatting.NewTagPattern(f.Size),
		infoHash:  formatting.NewTagPattern(f.InfoHash),
		category:  formatting.NewTagPattern(f.Category),
	}
}

func (p *TolerantParser) Parse(body string) []search.Release {
	now := p.options.Now()
	fragments := formatting.ItemFragments(body)
	releases := make([]search.Release, 0, len(fragments))
	for i, fragment := range fragments {
		release, err := p.parseItem(fragment, now)
		if err != nil {
			p.options.Logger.WithFields(log.Fields{"item": i, "error": err}).
				Debug("Skipping feed item")
			continue
		}
		releases = append(releases, release)
	}
	return releases
}

func (p *TolerantParser) field(pattern *formatting.TagPattern, fragment string) string {
	value, _ := pattern.Extract(fragment)
	return value
}

func (p *TolerantParser) parseItem(fragment string, now time.Time) (search.Release, error) {
	rawTitle := p.field(p.title, fragment)
	if rawTitle == "" {
		return search.Release{}, ErrMissingTitle
	}
	hash := p.field(p.infoHash, fragment)
	if hash == "" {
		return search.Release{}, ErrMissingHash
	}
	return buildRelease(itemValues{
		rawTitle:  rawTitle,
		hash:      hash,
		link:      p.field(p.link, fragment),
		pubDate:   p.field(p.pubDate, fragment),
		seeders:   p.field(p.seeders, fragment),
		leechers:  p.field(p.leechers, fragment),
		downloads: p.field(p.downloads, fragment),
		size:      p.field(p.size, fragment),
		category:  p.field(p.category, fragment),
	}, p.options, now), nil
}

// itemValues are the raw strings of an item, before any conversion.
type itemValues struct {
	rawTitle     string
	// titleDecoded is set when the xml decoder already resolved the title's entities.
	titleDecoded bool
	hash         string
	link         string
	pubDate      string
	seeders      string
	leechers     string
	downloads    string
	size         string
	category     string
}

func buildRelease(v itemValues, opts Options, now time.Time) search.Release {
	hash := strings.ToLower(v.hash)
	rawTitle, title := v.rawTitle, formatting.DecodeEntities(v.rawTitle)
	if v.titleDecoded {
		rawTitle, title = formatting.EscapeEntities(v.rawTitle), v.rawTitle
	}
	seeders := utils.ParseCount(v.seeders)

	link := v.link
	if link == "" {
		link = formatting.MagnetURI(hash, rawTitle, opts.Trackers...)
	}
	date, err := utils.ParsePublishDate(v.pubDate)
	if err != nil {
		date = now
	}
	return search.Release{
		Title:     title,
		Link:      link,
		Seeders:   seeders,
		Leechers:  utils.ParseCount(v.leechers),
		Downloads: utils.ParseCount(v.downloads),
		Hash:      hash,
		Size:      utils.ParseSize(v.size),
		Verified:  opts.Classifier.IsVerified(v.category, title, seeders),
		Date:      date,
	}
}
