package search

import (
	"fmt"
	"strings"

	"github.com/sp0x/nyaarss/indexer/formatting"
)

// Mode is the kind of release a search is after.
type Mode string

const (
	ModeSingle Mode = "single"
	ModeBatch  Mode = "batch"
	ModeMovie  Mode = "movie"
)

const movieToken = "movie"

// Query is a structured search request.
type Query struct {
	// Candidate titles, only the first one is searched for.
	Titles []string
	// Episode number, 0 when this isn't an episode search.
	Episode int
	// Vertical resolution, eg: 1080. 0 means any.
	Resolution int
	// Case-insensitive title fragments that disqualify a result.
	Exclusions []string
}

// NewQuery creates a query for a single title.
func NewQuery(title string) *Query {
	return &Query{Titles: []string{title}}
}

// Title is the title that gets searched for.
func (q Query) Title() string {
	if len(q.Titles) == 0 {
		return ""
	}
	return strings.TrimSpace(q.Titles[0])
}

// HasEpisode whether an episode number was given.
func (q Query) HasEpisode() bool {
	return q.Episode > 0
}

func (q Query) resolutionToken() string {
	if q.Resolution <= 0 {
		return ""
	}
	return fmt.Sprintf("%dp", q.Resolution)
}

// Keywords returns the query formatted as search keywords for the given mode.
// The second value is false when the query can't be searched in that mode.
func (q Query) Keywords(mode Mode) (string, bool) {
	title := q.Title()
	if title == "" {
		return "", false
	}
	tokens := []string{title}

	switch mode {
	case ModeSingle:
		if !q.HasEpisode() {
			return "", false
		}
		tokens = append(tokens, formatting.PadEpisode(q.Episode))
	case ModeBatch:
	case ModeMovie:
		tokens = append(tokens, movieToken)
	default:
		return "", false
	}

	if res := q.resolutionToken(); res != "" {
		tokens = append(tokens, res)
	}
	return strings.Join(tokens, " "), true
}

func (q Query) String() string {
	return fmt.Sprintf("%q ep:%d res:%d exclude:%v", q.Title(), q.Episode, q.Resolution, q.Exclusions)
}
