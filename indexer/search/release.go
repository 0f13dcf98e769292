package search

import (
	"fmt"
	"strings"
	"time"
)

// ReleaseType is the kind of release a result was searched as.
type ReleaseType string

const (
	ReleaseTypeUnset  ReleaseType = ""
	ReleaseTypeSingle ReleaseType = "single"
	ReleaseTypeBatch  ReleaseType = "batch"
	ReleaseTypeMovie  ReleaseType = "movie"
)

// Release is a single downloadable result from the index.
type Release struct {
	Title       string      `json:"title"`
	Link        string      `json:"link"`
	Seeders     int         `json:"seeders"`
	Leechers    int         `json:"leechers"`
	Downloads   int         `json:"downloads"`
	Hash        string      `json:"hash"`
	Size        uint64      `json:"size"`
	Verified    bool        `json:"verified"`
	Date        time.Time   `json:"date"`
	ReleaseType ReleaseType `json:"releaseType,omitempty"`
}

// WithType returns a copy of the release with the given type.
func (r Release) WithType(t ReleaseType) Release {
	r.ReleaseType = t
	return r
}

// IsMagnet whether the link is a magnet uri rather than a torrent file.
func (r *Release) IsMagnet() bool {
	return strings.HasPrefix(r.Link, "magnet:")
}

func (r *Release) String() string {
	return fmt.Sprintf("[%s]%s", r.Hash, r.Title)
}

// ExcludeTitles drops every release whose title contains any of the exclusions, ignoring case.
func ExcludeTitles(releases []Release, exclusions []string) []Release {
	var lowered []string
	for _, ex := range exclusions {
		if ex = strings.ToLower(strings.TrimSpace(ex)); ex != "" {
			lowered = append(lowered, ex)
		}
	}
	if len(lowered) == 0 {
		return releases
	}
	kept := make([]Release, 0, len(releases))
	for _, r := range releases {
		if !containsAny(strings.ToLower(r.Title), lowered) {
			kept = append(kept, r)
		}
	}
	return kept
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}
