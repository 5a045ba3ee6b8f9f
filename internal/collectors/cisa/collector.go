// Package cisa collects CISA cybersecurity advisories.
package cisa

import (
	"github.com/seclens-labs/seclens-cli/internal/collectors/web"
)

// SourceID identifies documents collected from CISA.
const SourceID = "cisa"

// FeedURL is the CISA cybersecurity advisories feed.
const FeedURL = "https://www.cisa.gov/cybersecurity-advisories/all.xml"

// FallbackURLs are advisory pages used when the feed is unavailable.
var FallbackURLs = []string{
	"https://www.cisa.gov/news-events/bulletins/sb25-265",
	"https://www.cisa.gov/news-events/cybersecurity-advisories/aa24-131a",
	"https://www.cisa.gov/news-events/alerts/aa23-353a",
	"https://www.cisa.gov/topics/cyber-threats-and-advisories",
	"https://www.cisa.gov/resources-tools/resources/secure-by-design",
}

// New creates the CISA advisory collector.
func New(opts ...web.Option) *web.Collector {
	return web.New(SourceID, FeedURL, FallbackURLs, opts...)
}
