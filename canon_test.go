// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstxt

package robotstxt

import "testing"

func TestExtractPathBasic(t *testing.T) {
	t.Parallel()

	if got := ExtractPath("http://www.example.com/a/b?c=d#e"); got != "/a/b?c=d" {
		t.Fatalf("ExtractPath: got %q", got)
	}
}

func TestExtractPathNoScheme(t *testing.T) {
	t.Parallel()

	if got := ExtractPath("/a/b"); got != "/a/b" {
		t.Fatalf("ExtractPath: got %q", got)
	}
}

func TestExtractPathProtocolRelative(t *testing.T) {
	t.Parallel()

	if got := ExtractPath("//example.com/x"); got != "/x" {
		t.Fatalf("ExtractPath: got %q", got)
	}
}

func TestExtractPathNoPath(t *testing.T) {
	t.Parallel()

	if got := ExtractPath("http://www.example.com"); got != "/" {
		t.Fatalf("ExtractPath: got %q", got)
	}
}

func TestExtractPathEarlyMarkerBeforeScheme(t *testing.T) {
	t.Parallel()

	// A "/" before "://" means there is no scheme: search for the path
	// starts over from the beginning instead of past a (nonexistent) authority.
	if got := ExtractPath("a/b://c"); got != "/b://c" {
		t.Fatalf("ExtractPath: got %q", got)
	}
}

func TestExtractPathFragmentBeforePath(t *testing.T) {
	t.Parallel()

	if got := ExtractPath("http://example.com#fragment/path"); got != "/" {
		t.Fatalf("ExtractPath: got %q", got)
	}
}

func TestCanonicalizePatternNonASCII(t *testing.T) {
	t.Parallel()

	got := string(CanonicalizePattern([]byte("/caf\xc3\xa9")))
	if got != "/caf%C3%A9" {
		t.Fatalf("CanonicalizePattern: got %q", got)
	}
}

func TestCanonicalizePatternRecapitalizesHex(t *testing.T) {
	t.Parallel()

	got := string(CanonicalizePattern([]byte("/a%2fb")))
	if got != "/a%2Fb" {
		t.Fatalf("CanonicalizePattern: got %q", got)
	}
}

func TestCanonicalizePatternUnchangedIdentity(t *testing.T) {
	t.Parallel()

	in := []byte("/already/%2F/ascii")
	got := CanonicalizePattern(in)
	if &got[0] != &in[0] {
		t.Fatalf("CanonicalizePattern: expected identity slice when unchanged")
	}
}

func TestCanonicalizePatternStringUnchanged(t *testing.T) {
	t.Parallel()

	in := "/plain/ascii/path"
	if got := CanonicalizePatternString(in); got != in {
		t.Fatalf("CanonicalizePatternString: got %q want %q", got, in)
	}
}

func TestAsciiHasPrefixFold(t *testing.T) {
	t.Parallel()

	if !asciiHasPrefixFold("User-Agent: *", "user-agent") {
		t.Fatalf("expected case-insensitive prefix match")
	}

	if asciiHasPrefixFold("Use", "User-agent") {
		t.Fatalf("shorter string must not match longer prefix")
	}
}

func TestExtractAgentToken(t *testing.T) {
	t.Parallel()

	if got := extractAgentToken("Googlebot/2.1"); got != "Googlebot" {
		t.Fatalf("extractAgentToken: got %q", got)
	}
}
