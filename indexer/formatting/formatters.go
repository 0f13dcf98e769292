package formatting

import (
	"fmt"
	"net/url"
	"strings"
)

// Only the entities the index is known to emit. Anything else is left as-is.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
)

var entityEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeEntities turns an already decoded title back into its feed text form.
func EscapeEntities(decoded string) string {
	return entityEscaper.Replace(decoded)
}

// DecodeEntities resolves the basic HTML entities in a title.
func DecodeEntities(raw string) string {
	return entityReplacer.Replace(raw)
}

// PadEpisode formats an episode number with at least two digits.
func PadEpisode(episode int) string {
	return fmt.Sprintf("%02d", episode)
}

// ComponentEscape percent-encodes a string for use as a single query value, spaces become %20.
func ComponentEscape(raw string) string {
	return strings.ReplaceAll(url.QueryEscape(raw), "+", "%20")
}

// MagnetURI builds a magnet link from an info hash and a display name.
func MagnetURI(hash, displayName string, trackers ...string) string {
	var b strings.Builder
	b.WriteString("magnet:?xt=urn:btih:")
	b.WriteString(hash)
	if displayName != "" {
		b.WriteString("&dn=")
		b.WriteString(ComponentEscape(displayName))
	}
	for _, tr := range trackers {
		if tr == "" {
			continue
		}
		b.WriteString("&tr=")
		b.WriteString(ComponentEscape(tr))
	}
	return b.String()
}
