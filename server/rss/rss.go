package rss

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gorilla/feeds"

	"github.com/sp0x/nyaarss/indexer/search"
)

const (
	FormatRss  = "rss"
	FormatAtom = "atom"
)

// NewFeed wraps the releases in a feed named after the search.
func NewFeed(site, name string, releases []search.Release) *feeds.Feed {
	feed := &feeds.Feed{
		Title:       fmt.Sprintf("%s from %s", name, site),
		Link:        &feeds.Link{Href: site},
		Description: name,
		Created:     time.Now(),
	}
	feed.Items = make([]*feeds.Item, len(releases))
	for i, release := range releases {
		item := &feeds.Item{
			Id:          release.Hash,
			Title:       release.Title,
			Link:        &feeds.Link{Href: release.Link},
			Description: describe(release),
			Created:     release.Date,
		}
		if !release.IsMagnet() && release.Link != "" {
			item.Enclosure = &feeds.Enclosure{
				Url:    release.Link,
				Length: strconv.FormatUint(release.Size, 10),
				Type:   "application/x-bittorrent",
			}
		}
		feed.Items[i] = item
	}
	return feed
}

func describe(release search.Release) string {
	parts := []string{
		fmt.Sprintf("Seeders: %d", release.Seeders),
		fmt.Sprintf("Leechers: %d", release.Leechers),
		fmt.Sprintf("Downloads: %d", release.Downloads),
		fmt.Sprintf("Size: %s", humanize.IBytes(release.Size)),
	}
	if release.Verified {
		parts = append(parts, "Verified")
	}
	if release.ReleaseType != search.ReleaseTypeUnset {
		parts = append(parts, fmt.Sprintf("Type: %s", release.ReleaseType))
	}
	return strings.Join(parts, " | ")
}

// Render serializes the feed, returning the content and its content type.
func Render(feed *feeds.Feed, format string) (string, string, error) {
	switch format {
	case "", FormatRss:
		content, err := feed.ToRss()
		return content, "application/rss+xml; charset=utf-8", err
	case FormatAtom:
		content, err := feed.ToAtom()
		return content, "application/atom+xml; charset=utf-8", err
	default:
		return "", "", fmt.Errorf("unsupported feed format %q", format)
	}
}

// SendRssFeed writes the releases to the context as an rss or atom feed.
func SendRssFeed(site, name, format string, releases []search.Release, c HttpContext) error {
	content, contentType, err := Render(NewFeed(site, name, releases), format)
	if err != nil {
		return err
	}
	c.Header("Content-Type", contentType)
	c.String(http.StatusOK, content)
	return nil
}
