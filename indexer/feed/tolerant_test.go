package feed

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/sp0x/nyaarss/indexer/search"
)

var _ = Describe("TolerantParser", func() {
	var (
		parser *TolerantParser
		hook   *test.Hook
	)

	BeforeEach(func() {
		var logger *log.Logger
		logger, hook = test.NewNullLogger()
		logger.SetLevel(log.DebugLevel)
		parser = NewTolerantParser(Options{Logger: logger, Now: fixedClock})
	})

	Context("with a well formed item without a link", func() {
		var releases []search.Release

		BeforeEach(func() {
			releases = parser.Parse(buildFeed(wellFormedItem))
		})

		It("should emit exactly one release", func() {
			Expect(releases).To(HaveLen(1))
		})

		It("should lowercase the hash", func() {
			Expect(releases[0].Hash).To(Equal("abcdef123"))
		})

		It("should synthesize a magnet link", func() {
			Expect(releases[0].Link).To(HavePrefix("magnet:?xt=urn:btih:abcdef123"))
			Expect(releases[0].Link).To(ContainSubstring("&dn=%5BGroup%5D%20Show%20-%2005"))
		})

		It("should keep the title as is", func() {
			Expect(releases[0].Title).To(Equal("[Group] Show - 05"))
		})

		It("shouldn't be verified", func() {
			Expect(releases[0].Verified).To(BeFalse())
		})

		It("should default the missing counters to zero", func() {
			Expect(releases[0].Seeders).To(Equal(10))
			Expect(releases[0].Leechers).To(BeZero())
			Expect(releases[0].Downloads).To(BeZero())
			Expect(releases[0].Size).To(BeZero())
		})

		It("should use the parse time as the date", func() {
			Expect(releases[0].Date).To(Equal(fixedNow))
		})

		It("should leave the release type unset", func() {
			Expect(releases[0].ReleaseType).To(Equal(search.ReleaseTypeUnset))
		})
	})

	Context("with a fully populated item", func() {
		var release search.Release

		BeforeEach(func() {
			releases := parser.Parse(buildFeed(fullItem))
			Expect(releases).To(HaveLen(1))
			release = releases[0]
		})

		It("should prefer CDATA and decode entities", func() {
			Expect(release.Title).To(Equal("[Group] Tom & Jerry - 01 [1080p]"))
		})

		It("should use the feed link verbatim", func() {
			Expect(release.Link).To(Equal("https://nyaa.si/download/1.torrent"))
		})

		It("should parse the counters", func() {
			Expect(release.Seeders).To(Equal(120))
			Expect(release.Leechers).To(Equal(7))
			Expect(release.Downloads).To(Equal(3456))
			Expect(release.Size).To(BeEquivalentTo(1503238553))
		})

		It("should parse the publish date", func() {
			Expect(release.Date.Equal(time.Date(2020, 10, 5, 10, 10, 0, 0, time.UTC))).To(BeTrue())
		})

		It("should be verified by its seeders", func() {
			Expect(release.Verified).To(BeTrue())
		})

		It("should lowercase a full length hash", func() {
			Expect(release.Hash).To(Equal("0123456789abcdef0123456789abcdef01234567"))
		})
	})

	Context("with malformed items", func() {
		It("should drop items without a hash and keep the rest", func() {
			releases := parser.Parse(buildFeed(wellFormedItem, missingHashItem))
			Expect(releases).To(HaveLen(1))
			Expect(releases[0].Hash).To(Equal("abcdef123"))
		})

		It("should drop items without a title", func() {
			releases := parser.Parse(buildFeed(missingTitleItem, wellFormedItem))
			Expect(releases).To(HaveLen(1))
		})

		It("should log the dropped items", func() {
			parser.Parse(buildFeed(missingHashItem))
			Expect(hook.LastEntry()).ToNot(BeNil())
			Expect(hook.LastEntry().Level).To(Equal(log.DebugLevel))
			Expect(hook.LastEntry().Data["error"]).To(Equal(ErrMissingHash))
		})

		It("should survive a broken envelope", func() {
			body := "<rss><channel>" + wellFormedItem + "<item><title>dangling"
			releases := parser.Parse(body)
			Expect(releases).To(HaveLen(1))
		})

		It("shouldn't read fields from outside of an item", func() {
			body := "<nyaa:infoHash>OUTSIDE</nyaa:infoHash><item><title>Show</title></item>"
			Expect(parser.Parse(body)).To(BeEmpty())
		})

		It("should treat garbage counters as zero", func() {
			item := strings.Replace(wellFormedItem, "<nyaa:seeders>10", "<nyaa:seeders>many", 1)
			releases := parser.Parse(buildFeed(item))
			Expect(releases).To(HaveLen(1))
			Expect(releases[0].Seeders).To(BeZero())
		})
	})

	Context("with the trust signals", func() {
		It("should verify items in a trusted category", func() {
			item := strings.Replace(wellFormedItem, "</item>", "<nyaa:category>Trusted</nyaa:category></item>", 1)
			Expect(parser.Parse(buildFeed(item))[0].Verified).To(BeTrue())
		})

		It("should verify items with a checkmark", func() {
			item := strings.Replace(wellFormedItem, "Show - 05", "Show - 05 ✓", 1)
			Expect(parser.Parse(buildFeed(item))[0].Verified).To(BeTrue())
		})
	})

	It("should keep the document order", func() {
		second := strings.Replace(wellFormedItem, "ABCDEF123", "BBB", 1)
		releases := parser.Parse(buildFeed(wellFormedItem, second))
		Expect(releases).To(HaveLen(2))
		Expect(releases[0].Hash).To(Equal("abcdef123"))
		Expect(releases[1].Hash).To(Equal("bbb"))
	})

	It("should be idempotent", func() {
		body := buildFeed(fullItem, wellFormedItem, missingHashItem)
		Expect(parser.Parse(body)).To(Equal(parser.Parse(body)))
	})

	It("should return an empty result for an empty feed", func() {
		Expect(parser.Parse(buildFeed())).To(BeEmpty())
		Expect(parser.Parse("")).To(BeEmpty())
	})

	It("should append trackers to synthesized magnets", func() {
		p := NewTolerantParser(Options{Trackers: []string{"udp://t:1/a"}, Now: fixedClock})
		releases := p.Parse(buildFeed(wellFormedItem))
		Expect(releases[0].Link).To(HaveSuffix("&tr=udp%3A%2F%2Ft%3A1%2Fa"))
	})
})
