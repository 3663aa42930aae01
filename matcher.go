// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstxt

package robotstxt

// Strategy defines a pluggable pattern-matching policy. Match returns a
// priority for one Allow/Disallow pattern against a normalized request
// path:
//
//	priority < 0:  no match
//	priority == 0: match, but treated as if it matched an empty pattern
//	priority > 0:  match
//
// DecisionEngine is parameterized over Strategy so alternate arbitration
// policies can be substituted without touching its state machine.
type Strategy interface {
	Match(path, pattern []byte) int
}

// LongestMatch is the default Strategy: the priority of a successful
// match is the pattern's length, so that longer (more specific) patterns
// win over shorter ones when Allow and Disallow both match a path.
type LongestMatch struct{}

// Match implements Strategy.
func (LongestMatch) Match(path, pattern []byte) int {
	if !matchesPattern(path, pattern) {
		return -1
	}

	return len(pattern)
}

// FirstMatch is an alternate Strategy where any match wins with equal
// weight regardless of pattern length; callers that want "first rule
// that matches, in directive order" arbitration instead of longest-match
// can use this in place of LongestMatch. DecisionEngine does not select
// this strategy itself; it is provided so a caller driving the Handler
// interface directly can override arbitration.
type FirstMatch struct{}

// Match implements Strategy.
func (FirstMatch) Match(path, pattern []byte) int {
	if !matchesPattern(path, pattern) {
		return -1
	}

	return 1
}

// matchesPattern reports whether pattern, anchored at the start of path,
// matches path. "*" matches any (possibly empty) byte run. "$" is special
// only as the final byte of pattern, where it anchors the match to the
// end of path; elsewhere it is a literal byte.
//
// The algorithm tracks the sorted set of path positions reachable by the
// pattern prefix consumed so far. A literal byte narrows the set to
// positions whose next path byte matches; "*" widens the set to every
// position from the current minimum onward. This keeps the work for each
// pattern byte linear in len(path), for an overall O(len(path)*len(pattern))
// bound with no exponential blowup on adversarial patterns such as
// "*a*a*a*a*...".
func matchesPattern(path, pattern []byte) bool {
	pathLen := len(path)
	pos := make([]int, 1, pathLen+1)
	pos[0] = 0

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]

		if c == '$' && i == len(pattern)-1 {
			return pos[len(pos)-1] == pathLen
		}

		if c == '*' {
			min := pos[0]
			widened := make([]int, 0, pathLen-min+1)
			for p := min; p <= pathLen; p++ {
				widened = append(widened, p)
			}
			pos = widened
			continue
		}

		// Compact in place: the write cursor never outruns the read
		// cursor since each surviving position maps to p+1 > p.
		narrowed := pos[:0]
		for _, p := range pos {
			if p < pathLen && path[p] == c {
				narrowed = append(narrowed, p+1)
			}
		}

		if len(narrowed) == 0 {
			return false
		}

		pos = narrowed
	}

	return true
}
