// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstxt

package robotstxt

import "bytes"

// maxLineLen bounds the tokenizer's per-line working buffer. Some
// browsers cap URL length at 2083 bytes; robots.txt lines are rarely
// anywhere near that, but the generous multiple leaves headroom for
// UTF-8 expansion without letting a single pathological line grow
// unbounded. Bytes beyond this bound on one line are silently dropped.
const maxLineLen = 2083 * 8

const utf8BOM = "\xEF\xBB\xBF"

// Handler receives tokenizer events for one robots.txt body. Implementations
// must not retain byte slices passed to On* methods beyond the call: the
// tokenizer reuses its internal line buffer across lines.
type Handler interface {
	OnStart()
	OnUserAgent(line int, value string)
	OnAllow(line int, value []byte)
	OnDisallow(line int, value []byte)
	OnSitemap(line int, value string)
	OnCrawlDelay(line int, value []byte)
	OnUnknown(line int, key string, value []byte)
	OnEnd()
}

// Tokenize streams body into (line, key, value) events delivered to h,
// handling a leading UTF-8 BOM, any mix of LF/CR/CRLF line endings,
// trailing comments, and colon-or-whitespace key/value separators.
//
// Tokenize emits OnStart before the first line and OnEnd after the last,
// so h can initialize and finalize state around the stream.
func Tokenize(body []byte, h Handler, opts TokenizerOptions) {
	h.OnStart()

	lineBuf := make([]byte, 0, maxLineLen)
	lineNum := 0
	bomPos := 0
	lastWasCR := false

	for i := 0; i < len(body); i++ {
		ch := body[i]

		if bomPos < len(utf8BOM) {
			if ch == utf8BOM[bomPos] {
				bomPos++
				continue
			}
			bomPos = len(utf8BOM)
		}

		if ch != '\n' && ch != '\r' {
			if len(lineBuf) < maxLineLen {
				lineBuf = append(lineBuf, ch)
			}
			continue
		}

		// A bare CR followed by LF must not emit an empty line in between.
		isCRLFContinuation := len(lineBuf) == 0 && lastWasCR && ch == '\n'
		if !isCRLFContinuation {
			lineNum++
			processLine(lineNum, lineBuf, h, opts)
		}

		lineBuf = lineBuf[:0]
		lastWasCR = ch == '\r'
	}

	lineNum++
	processLine(lineNum, lineBuf, h, opts)

	h.OnEnd()
}

// processLine strips comments and whitespace, splits key/value, classifies
// the key, canonicalizes the value when required, and dispatches to h.
func processLine(lineNum int, rawLine []byte, h Handler, opts TokenizerOptions) {
	line := stripComment(rawLine)
	line = trimASCIISpaceBytes(line)
	if len(line) == 0 {
		return
	}

	key, value, ok := splitKeyValue(line)
	if !ok || len(key) == 0 {
		return
	}

	kind := classifyKey(string(key), opts.TypoTolerant)
	dispatchDirective(lineNum, kind, key, value, h)
}

func stripComment(line []byte) []byte {
	if idx := bytes.IndexByte(line, '#'); idx >= 0 {
		return line[:idx]
	}

	return line
}

// splitKeyValue locates the key/value separator per §4.3: a colon if one
// exists, otherwise (the Google-specific accommodation) a run of
// spaces/tabs, but only when the line contains exactly two non-whitespace
// sequences.
func splitKeyValue(line []byte) (key, value []byte, ok bool) {
	if idx := bytes.IndexByte(line, ':'); idx >= 0 {
		return trimASCIISpaceBytes(line[:idx]), trimASCIISpaceBytes(line[idx+1:]), true
	}

	fields := bytes.Fields(line)
	if len(fields) != 2 {
		return nil, nil, false
	}

	return fields[0], fields[1], true
}

// dispatchDirective canonicalizes the value for every kind except
// UserAgent and Sitemap, which are passed through verbatim, and emits the
// matching Handler callback.
func dispatchDirective(lineNum int, kind DirectiveKind, key, value []byte, h Handler) {
	switch kind {
	case KindUserAgent:
		h.OnUserAgent(lineNum, string(value))
	case KindSitemap:
		h.OnSitemap(lineNum, string(value))
	case KindAllow:
		h.OnAllow(lineNum, CanonicalizePattern(value))
	case KindDisallow:
		h.OnDisallow(lineNum, CanonicalizePattern(value))
	case KindCrawlDelay:
		h.OnCrawlDelay(lineNum, CanonicalizePattern(value))
	default:
		h.OnUnknown(lineNum, string(key), CanonicalizePattern(value))
	}
}

func trimASCIISpaceBytes(b []byte) []byte {
	start := 0
	for start < len(b) && isAsciiSpace(b[start]) {
		start++
	}

	end := len(b)
	for end > start && isAsciiSpace(b[end-1]) {
		end--
	}

	return b[start:end]
}
