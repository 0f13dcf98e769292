package formatting

import (
	"regexp"
	"strings"
)

var itemRx = regexp.MustCompile(`(?is)<item(?:\s[^>]*)?>(.*?)</item\s*>`)

// ItemFragments returns the inner contents of every <item> element, in document order.
// Anything outside of the items (the channel envelope) is ignored.
func ItemFragments(body string) []string {
	matches := itemRx.FindAllStringSubmatch(body, -1)
	fragments := make([]string, 0, len(matches))
	for _, m := range matches {
		fragments = append(fragments, m[1])
	}
	return fragments
}

// TagPattern extracts the text of a single named leaf tag from an item fragment.
// CDATA wrapped content wins over plain content.
type TagPattern struct {
	Name  string
	cdata *regexp.Regexp
	plain *regexp.Regexp
}

// NewTagPattern compiles the patterns for a tag name, which may include a namespace prefix.
func NewTagPattern(name string) *TagPattern {
	quoted := regexp.QuoteMeta(name)
	open := `<` + quoted + `(?:\s[^>]*)?>`
	closing := `</` + quoted + `\s*>`
	return &TagPattern{
		Name:  name,
		cdata: regexp.MustCompile(`(?is)` + open + `\s*<!\[CDATA\[(.*?)\]\]>\s*` + closing),
		plain: regexp.MustCompile(`(?is)` + open + `(.*?)` + closing),
	}
}

// Extract returns the trimmed value of the tag and whether the tag was present at all.
func (p *TagPattern) Extract(fragment string) (string, bool) {
	if m := p.cdata.FindStringSubmatch(fragment); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := p.plain.FindStringSubmatch(fragment); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// ExtractTag is a one-off version of TagPattern.Extract.
func ExtractTag(fragment, name string) (string, bool) {
	return NewTagPattern(name).Extract(fragment)
}
