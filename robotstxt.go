// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstxt

package robotstxt

import (
	"net/url"
	"strconv"
)

// IsAllowed reports whether any of agents may fetch rawURL according to
// body. agents are tried as a single combined crawler identity: a
// directive matches if it applies to the global group or to any of the
// named agents.
func IsAllowed(body []byte, agents []string, rawURL string) bool {
	return Evaluate(body, agents, rawURL).Allowed()
}

// IsAllowedOne is a convenience wrapper around IsAllowed for a single
// user-agent token.
func IsAllowedOne(body []byte, agent string, rawURL string) bool {
	return IsAllowed(body, []string{agent}, rawURL)
}

// Evaluate parses body and returns the full Decision for agents and
// rawURL, including the matching line number and whether a specific
// (non-global) group for agents was ever seen.
func Evaluate(body []byte, agents []string, rawURL string) *Decision {
	path := []byte(ExtractPath(rawURL))
	d := newDecision(path, agents)
	Tokenize(body, d, defaultTokenizerOptions)
	return d
}

// sitemapCollector is a minimal Handler used solely to gather Sitemap
// directive values; it ignores every other directive kind.
type sitemapCollector struct {
	sitemaps []string
}

func (c *sitemapCollector) OnStart()                            {}
func (c *sitemapCollector) OnUserAgent(_ int, _ string)         {}
func (c *sitemapCollector) OnAllow(_ int, _ []byte)             {}
func (c *sitemapCollector) OnDisallow(_ int, _ []byte)          {}
func (c *sitemapCollector) OnCrawlDelay(_ int, _ []byte)        {}
func (c *sitemapCollector) OnUnknown(_ int, _ string, _ []byte) {}
func (c *sitemapCollector) OnEnd()                              {}

func (c *sitemapCollector) OnSitemap(_ int, value string) {
	c.sitemaps = append(c.sitemaps, value)
}

// ParseSitemaps extracts every Sitemap directive value from body, in file
// order, regardless of which (if any) user-agent group they appear under:
// per the protocol, Sitemap directives are global declarations and are
// not scoped to a group.
func ParseSitemaps(body []byte) []string {
	c := &sitemapCollector{}
	Tokenize(body, c, defaultTokenizerOptions)
	return c.sitemaps
}

// SitemapURLs is ParseSitemaps followed by net/url validation: entries
// that fail to parse as an absolute http(s) URL are dropped rather than
// passed through as unusable strings.
func SitemapURLs(body []byte) []url.URL {
	raw := ParseSitemaps(body)
	urls := make([]url.URL, 0, len(raw))

	for _, s := range raw {
		u, err := url.Parse(s)
		if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
			continue
		}

		urls = append(urls, *u)
	}

	return urls
}

// crawlDelayHandler tracks the Crawl-delay value that applies to one
// agent, using the same group/specificity precedence as Decision:
// a Crawl-delay under a specific group for agent wins over one under the
// global group.
type crawlDelayHandler struct {
	agent string

	seenGlobalAgent   bool
	seenSpecificAgent bool
	seenSeparator     bool

	specific    float64
	specificSet bool
	global      float64
	globalSet   bool
}

func (h *crawlDelayHandler) OnStart() {}

func (h *crawlDelayHandler) OnUserAgent(_ int, value string) {
	if h.seenSeparator {
		h.seenSpecificAgent = false
		h.seenGlobalAgent = false
		h.seenSeparator = false
	}

	if isGlobalAgentValue(value) {
		h.seenGlobalAgent = true
		return
	}

	if asciiEqualFold(extractAgentToken(value), h.agent) {
		h.seenSpecificAgent = true
	}
}

func (h *crawlDelayHandler) OnAllow(_ int, _ []byte)    { h.seenSeparator = true }
func (h *crawlDelayHandler) OnDisallow(_ int, _ []byte) { h.seenSeparator = true }
func (h *crawlDelayHandler) OnSitemap(_ int, _ string)  { h.seenSeparator = true }
func (h *crawlDelayHandler) OnUnknown(_ int, _ string, _ []byte) {
	h.seenSeparator = true
}
func (h *crawlDelayHandler) OnEnd() {}

func (h *crawlDelayHandler) OnCrawlDelay(_ int, value []byte) {
	if !h.seenSpecificAgent && !h.seenGlobalAgent {
		return
	}

	h.seenSeparator = true

	seconds, err := strconv.ParseFloat(string(value), 64)
	if err != nil || seconds < 0 {
		return
	}

	if h.seenSpecificAgent {
		h.specific = seconds
		h.specificSet = true
	} else {
		h.global = seconds
		h.globalSet = true
	}
}

// CrawlDelay returns the Crawl-delay value (in seconds) that applies to
// agent, and whether one was present. A specific group's value always
// takes precedence over the global group's, matching the precedence
// Decision applies to Allow/Disallow. The result never feeds into
// IsAllowed, IsAllowedOne, or Evaluate: this package makes no scheduling
// decisions of its own.
func CrawlDelay(body []byte, agent string) (seconds float64, ok bool) {
	h := &crawlDelayHandler{agent: agent}
	Tokenize(body, h, defaultTokenizerOptions)

	if h.specificSet {
		return h.specific, true
	}
	if h.globalSet {
		return h.global, true
	}

	return 0, false
}
