// Package feed turns raw index feed bodies into releases.
package feed

import (
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sp0x/nyaarss/config"
	"github.com/sp0x/nyaarss/indexer/classify"
	"github.com/sp0x/nyaarss/indexer/search"
)

var (
	ErrMissingTitle = errors.New("item has no title")
	ErrMissingHash  = errors.New("item has no info hash")
)

// Parser extracts releases from a feed body, in document order.
type Parser interface {
	Parse(body string) []search.Release
}

// Fields are the tag names of the item fields, matched case-insensitively.
type Fields struct {
	Title     string
	Link      string
	PubDate   string
	Seeders   string
	Leechers  string
	Downloads string
	Size      string
	InfoHash  string
	Category  string
}

// DefaultFields are the fields of the nyaa rss feed.
func DefaultFields() Fields {
	return Fields{
		Title:     "title",
		Link:      "link",
		PubDate:   "pubDate",
		Seeders:   "nyaa:seeders",
		Leechers:  "nyaa:leechers",
		Downloads: "nyaa:downloads",
		Size:      "nyaa:size",
		InfoHash:  "nyaa:infoHash",
		Category:  "nyaa:category",
	}
}

// Options shared by the parsers.
type Options struct {
	Fields     Fields
	Classifier *classify.Classifier
	// Trackers get appended to synthesized magnet links.
	Trackers []string
	Logger   *log.Logger
	// Now is the clock used for items without a publish date.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Fields == (Fields{}) {
		o.Fields = DefaultFields()
	}
	if o.Classifier == nil {
		o.Classifier = classify.Default()
	}
	if o.Logger == nil {
		o.Logger = log.StandardLogger()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// New creates a parser by name: "tolerant" or "strict".
func New(name string, opts Options) (Parser, error) {
	switch strings.ToLower(name) {
	case "", config.DefaultParser:
		return NewTolerantParser(opts), nil
	case "strict", "gofeed":
		return NewStrictParser(opts), nil
	default:
		return nil, errors.New("unknown feed parser " + name)
	}
}
