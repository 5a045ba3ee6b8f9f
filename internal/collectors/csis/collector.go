// Package csis collects CSIS cybersecurity analyses.
package csis

import (
	"github.com/seclens-labs/seclens-cli/internal/collectors/web"
)

// SourceID identifies documents collected from CSIS.
const SourceID = "csis"

// FeedURL is the CSIS publications feed filtered to cybersecurity.
const FeedURL = "https://www.csis.org/analysis/feed"

// FallbackURLs are analysis pages used when the feed is unavailable.
var FallbackURLs = []string{
	"https://www.csis.org/topics/cybersecurity",
	"https://www.csis.org/programs/strategic-technologies-program/significant-cyber-incidents",
}

// New creates the CSIS analysis collector.
func New(opts ...web.Option) *web.Collector {
	return web.New(SourceID, FeedURL, FallbackURLs, opts...)
}
