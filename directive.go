// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstxt

package robotstxt

// classifyKey classifies a raw directive key string into a DirectiveKind,
// tolerating common typos when typoTolerant is set. Classification is
// case-insensitive ASCII prefix matching; the first matching rule wins.
func classifyKey(key string, typoTolerant bool) DirectiveKind {
	switch {
	case keyIsUserAgent(key, typoTolerant):
		return KindUserAgent
	case keyIsAllow(key):
		return KindAllow
	case keyIsDisallow(key, typoTolerant):
		return KindDisallow
	case keyIsSitemap(key):
		return KindSitemap
	case keyIsCrawlDelay(key, typoTolerant):
		return KindCrawlDelay
	default:
		return KindUnknown
	}
}

func keyIsUserAgent(key string, typoTolerant bool) bool {
	if asciiHasPrefixFold(key, "user-agent") {
		return true
	}

	return typoTolerant && (asciiHasPrefixFold(key, "useragent") || asciiHasPrefixFold(key, "user agent"))
}

func keyIsAllow(key string) bool {
	return asciiHasPrefixFold(key, "allow")
}

func keyIsDisallow(key string, typoTolerant bool) bool {
	if asciiHasPrefixFold(key, "disallow") {
		return true
	}

	if !typoTolerant {
		return false
	}

	for _, typo := range [...]string{"dissallow", "dissalow", "disalow", "diasllow", "disallaw"} {
		if asciiHasPrefixFold(key, typo) {
			return true
		}
	}

	return false
}

func keyIsSitemap(key string) bool {
	return asciiHasPrefixFold(key, "sitemap") || asciiHasPrefixFold(key, "site-map")
}

func keyIsCrawlDelay(key string, typoTolerant bool) bool {
	if asciiHasPrefixFold(key, "crawl-delay") {
		return true
	}

	return typoTolerant && (asciiHasPrefixFold(key, "crawldelay") || asciiHasPrefixFold(key, "crawl delay"))
}
