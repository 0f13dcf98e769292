package feed

import (
	"strings"
	"time"
)

var fixedNow = time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

const feedHeader = `<?xml version="1.0" encoding="UTF-8"?>
<rss xmlns:atom="http://www.w3.org/2005/Atom" xmlns:nyaa="https://nyaa.si/xmlns/nyaa" version="2.0">
	<channel>
		<title>Nyaa - "show" - Torrent File RSS</title>
		<description>RSS Feed for "show"</description>
		<link>https://nyaa.si/</link>
		<atom:link href="https://nyaa.si/?page=rss" rel="self" type="application/rss+xml" />
`

const feedFooter = `
	</channel>
</rss>`

const wellFormedItem = `
		<item>
			<title>[Group] Show - 05</title>
			<nyaa:seeders>10</nyaa:seeders>
			<nyaa:infoHash>ABCDEF123</nyaa:infoHash>
		</item>`

const fullItem = `
		<item>
			<title><![CDATA[[Group] Tom &amp; Jerry - 01 [1080p]]]></title>
			<link>https://nyaa.si/download/1.torrent</link>
			<guid isPermaLink="true">https://nyaa.si/view/1</guid>
			<pubDate>Mon, 05 Oct 2020 10:10:00 -0000</pubDate>
			<nyaa:seeders>120</nyaa:seeders>
			<nyaa:leechers>7</nyaa:leechers>
			<nyaa:downloads>3,456</nyaa:downloads>
			<nyaa:infoHash>0123456789ABCDEF0123456789ABCDEF01234567</nyaa:infoHash>
			<nyaa:categoryId>1_2</nyaa:categoryId>
			<nyaa:category>Anime - English-translated</nyaa:category>
			<nyaa:size>1.4 GiB</nyaa:size>
			<nyaa:trusted>No</nyaa:trusted>
		</item>`

const missingHashItem = `
		<item>
			<title>[Group] Show - 06</title>
			<nyaa:seeders>3</nyaa:seeders>
		</item>`

const missingTitleItem = `
		<item>
			<title></title>
			<nyaa:infoHash>ffff</nyaa:infoHash>
		</item>`

func buildFeed(items ...string) string {
	return feedHeader + strings.Join(items, "") + feedFooter
}
