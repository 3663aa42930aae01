// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstxt

/*
Package robotstxt answers one question: given the text of a robots.txt
exclusion file, a target URL, and one or more crawler user-agent product
tokens, is the crawler permitted to fetch that URL?

It implements the expired "Robots Exclusion Protocol" internet draft
together with the widely deployed operator extensions: wildcards ("*"),
end-anchors ("$"), longest-match precedence between conflicting Allow
and Disallow rules, typo-tolerant directive keys, and percent-encoding
normalization of non-ASCII pattern bytes.

Basic flow:
  - call IsAllowed (or IsAllowedOne for a single agent) directly, or
  - call Evaluate to get a *Decision exposing MatchingLine and
    EverSeenSpecificAgent alongside the boolean verdict.

The library performs no network fetching, no caching of previously
retrieved robots.txt files, and no full RFC 3986 URL parsing: callers
own those concerns. A single Evaluate call consumes its input
synchronously and retains nothing afterward; distinct calls never share
state and may run concurrently on disjoint goroutines without
coordination.
*/
package robotstxt
