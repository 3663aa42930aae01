// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstxt

package robotstxt

import "strings"

const hexDigits = "0123456789ABCDEF"

// ExtractPath extracts the path+params+query portion of a URL, always
// returning a string that starts with "/".
//
// The algorithm intentionally does not implement full RFC 3986 parsing:
// it mirrors the scheme/authority-stripping heuristics webmasters'
// crawlers have relied on for this exact problem, including treating an
// early path/query/param marker that precedes "://" as proof no scheme
// is present.
func ExtractPath(url string) string {
	searchStart := 0
	if len(url) >= 2 && url[0] == '/' && url[1] == '/' {
		searchStart = 2
	}

	earlyPath := indexAnyFrom(url, "/?;", searchStart)
	protocolEnd := indexFrom(url, "://", searchStart)
	if earlyPath >= 0 && (protocolEnd < 0 || earlyPath < protocolEnd) {
		// If a path/param/query marker starts before "://", the "://" does
		// not indicate a scheme.
		protocolEnd = -1
	}

	if protocolEnd < 0 {
		protocolEnd = searchStart
	} else {
		protocolEnd += 3
	}

	pathStart := indexAnyFrom(url, "/?;", protocolEnd)
	if pathStart < 0 {
		return "/"
	}

	hashPos := indexFrom(url, "#", searchStart)
	if hashPos >= 0 && hashPos < pathStart {
		return "/"
	}

	pathEnd := len(url)
	if hashPos >= 0 {
		pathEnd = hashPos
	}

	if url[pathStart] != '/' {
		return "/" + url[pathStart:pathEnd]
	}

	return url[pathStart:pathEnd]
}

// indexAnyFrom returns the index of the first byte in chars found in s at
// or after start, or -1 if none is found.
func indexAnyFrom(s, chars string, start int) int {
	if start > len(s) {
		return -1
	}

	if i := strings.IndexAny(s[start:], chars); i >= 0 {
		return start + i
	}

	return -1
}

// indexFrom returns the index of the first occurrence of sub in s at or
// after start, or -1 if none is found.
func indexFrom(s, sub string, start int) int {
	if start > len(s) {
		return -1
	}

	if i := strings.Index(s[start:], sub); i >= 0 {
		return start + i
	}

	return -1
}

// CanonicalizePattern normalizes a directive value so that every non-ASCII
// byte is percent-encoded and every existing "%HH" escape uses uppercase
// hex digits. Bytes already within ASCII that are not part of a "%HH"
// sequence pass through unchanged.
//
// The returned slice is the original slice when no change was needed, or
// a freshly allocated buffer otherwise; callers must not assume either
// case and must not mutate the result.
func CanonicalizePattern(value []byte) []byte {
	numToEscape := 0
	needCapitalize := false

	for i := 0; i < len(value); i++ {
		if value[i] == '%' && i+2 < len(value) && isHexDigit(value[i+1]) && isHexDigit(value[i+2]) {
			if isLowerHex(value[i+1]) || isLowerHex(value[i+2]) {
				needCapitalize = true
			}
			i += 2
		} else if value[i]&0x80 != 0 {
			numToEscape++
		}
	}

	if numToEscape == 0 && !needCapitalize {
		return value
	}

	out := make([]byte, 0, len(value)+numToEscape*2)
	for i := 0; i < len(value); i++ {
		switch {
		case value[i] == '%' && i+2 < len(value) && isHexDigit(value[i+1]) && isHexDigit(value[i+2]):
			out = append(out, '%', asciiUpper(value[i+1]), asciiUpper(value[i+2]))
			i += 2
		case value[i]&0x80 != 0:
			out = append(out, '%', hexDigits[value[i]>>4], hexDigits[value[i]&0xf])
		default:
			out = append(out, value[i])
		}
	}

	return out
}

// CanonicalizePatternString is a string-typed convenience wrapper around
// CanonicalizePattern.
func CanonicalizePatternString(value string) string {
	canon := CanonicalizePattern([]byte(value))
	if string(canon) == value {
		// Return the original string when nothing changed, avoiding a
		// second conversion.
		return value
	}

	return string(canon)
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isLowerHex(b byte) bool {
	return b >= 'a' && b <= 'f'
}

func asciiUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func asciiLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// asciiHasPrefixFold reports whether s starts with prefix, comparing ASCII
// letters case-insensitively and all other bytes literally.
func asciiHasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}

	for i := 0; i < len(prefix); i++ {
		if asciiLower(s[i]) != asciiLower(prefix[i]) {
			return false
		}
	}

	return true
}

// asciiEqualFold reports whether a and b are equal, comparing ASCII
// letters case-insensitively and all other bytes literally.
func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := 0; i < len(a); i++ {
		if asciiLower(a[i]) != asciiLower(b[i]) {
			return false
		}
	}

	return true
}

// isAsciiSpace reports whether b is an ASCII whitespace byte.
func isAsciiSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// isAgentTokenByte reports whether b is a valid byte of a user-agent
// product token: [A-Za-z_-].
func isAgentTokenByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' || b == '-'
}

// extractAgentToken returns the leading run of isAgentTokenByte bytes.
func extractAgentToken(value string) string {
	i := 0
	for i < len(value) && isAgentTokenByte(value[i]) {
		i++
	}

	return value[:i]
}
