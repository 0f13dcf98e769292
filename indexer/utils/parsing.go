package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/bcampbell/fuzzytime"
	"github.com/dustin/go-humanize"
)

var publishDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	time.RFC3339,
}

func NormalizeNumber(s string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ",", "")

	if normalized == "" {
		normalized = "0"
	}

	return normalized
}

func NormalizeSpace(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s))
}

// ParseCount parses a peer/download counter. Missing, malformed or negative values are 0.
func ParseCount(s string) int {
	v, err := strconv.Atoi(NormalizeNumber(s))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseSize parses a byte count, either a plain integer or a human readable size like "1.4 GiB".
// Anything unparsable is 0.
func ParseSize(s string) uint64 {
	normalized := NormalizeNumber(s)
	if v, err := strconv.ParseUint(normalized, 10, 64); err == nil {
		return v
	}
	v, err := humanize.ParseBytes(normalized)
	if err != nil {
		return 0
	}
	return v
}

// ParsePublishDate parses a feed publish date, trying the RSS layouts before fuzzy matching.
func ParsePublishDate(src string) (time.Time, error) {
	src = NormalizeSpace(src)
	if src == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range publishDateLayouts {
		if t, err := time.Parse(layout, src); err == nil {
			return t, nil
		}
	}
	return parseFuzzyDate(src)
}

func parseFuzzyDate(src string) (time.Time, error) {
	dt, _, err := fuzzytime.USContext.Extract(src)
	if err != nil {
		return time.Time{}, fmt.Errorf("error extracting date from %q: %v", src, err)
	}
	if !dt.HasFullDate() {
		return time.Time{}, fmt.Errorf("found only partial date %v", dt.ISOFormat())
	}
	if dt.Time.Empty() {
		dt.Time.SetHour(0)
		dt.Time.SetMinute(0)
	}
	if !dt.Time.HasSecond() {
		dt.Time.SetSecond(0)
	}
	if !dt.HasTZOffset() {
		dt.Time.SetTZOffset(0)
	}
	return time.Parse("2006-01-02T15:04:05Z07:00", dt.ISOFormat())
}
