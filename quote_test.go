package inspectx

import (
	"strings"
	"testing"
)

func TestQuote_PreferenceOrder(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", `"plain"`},
		{`say "hi"`, `'say "hi"'`},
		{`both " and '`, "`both \" and '`"},
		{"all \" and ' and `", `"all \" and ' and ` + "`" + `"`},
		{"", `""`},
	}
	for _, tc := range cases {
		if got := Quote(tc.in); got != tc.want {
			t.Fatalf("Quote(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestQuote_ControlEscapes(t *testing.T) {
	got := Quote("a\tb\nc")
	if got != `"a\tb\nc"` {
		t.Fatalf("named escapes = %q", got)
	}
	got = Quote("\x01\x7f")
	if got != `"\x01\x7f"` {
		t.Fatalf("hex escapes = %q", got)
	}
	// C1 controls are non-printable and escape like the C0 range.
	got = Quote("abc")
	if got != `"a\x85b\x9fc"` {
		t.Fatalf("C1 escapes = %q", got)
	}
	// Backslashes always escape, regardless of quote choice.
	if got := Quote(`a\b`); got != `"a\\b"` {
		t.Fatalf("backslash = %q", got)
	}
}

func TestQuote_UnquoteRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"plain",
		"with \"double\" quotes",
		"with 'single' quotes",
		"with `backticks`",
		"all three: \" ' `",
		"tabs\tand\nnewlines\r",
		"\x00\x01\x1f\x7f",
		"C1 controls ",
		"backslash \\ inside",
		"unicode: héllo wörld ☺",
	}
	for _, s := range cases {
		q := Quote(s)
		back, err := Unquote(q)
		if err != nil {
			t.Fatalf("Unquote(%q): %v", q, err)
		}
		if back != s {
			t.Fatalf("round trip %q -> %q -> %q", s, q, back)
		}
	}
}

func TestUnquote_Errors(t *testing.T) {
	for _, bad := range []string{"", `"`, `no quotes`, `"mismatched'`, `"dangling \`} {
		if _, err := Unquote(bad); err == nil {
			t.Fatalf("Unquote(%q): expected error", bad)
		}
	}
}

func TestQuoteNested_Abbreviation(t *testing.T) {
	long := strings.Repeat("a", 150)
	got := quoteNested(long)
	// The ellipsis sits inside the quoted form.
	want := `"` + strings.Repeat("a", 100) + `..."`
	if got != want {
		t.Fatalf("abbreviated = %q, want %q", got, want)
	}
	// Short text is untouched.
	if got := quoteNested("short"); got != `"short"` {
		t.Fatalf("short nested = %q", got)
	}
}

func TestIsIdentifier(t *testing.T) {
	for _, ok := range []string{"a", "_x", "$", "camelCase", "a1", "$ok_2"} {
		if !isIdentifier(ok) {
			t.Fatalf("isIdentifier(%q) = false", ok)
		}
	}
	for _, bad := range []string{"", "1a", "has space", "dash-ed", "héllo"} {
		if isIdentifier(bad) {
			t.Fatalf("isIdentifier(%q) = true", bad)
		}
	}
}

func TestQuoteKey(t *testing.T) {
	if got := quoteKey("plain"); got != "plain" {
		t.Fatalf("identifier key = %q", got)
	}
	if got := quoteKey("needs quoting"); got != `"needs quoting"` {
		t.Fatalf("quoted key = %q", got)
	}
}

func TestQuoteSymbol(t *testing.T) {
	if got := quoteSymbol(Symbol{Description: "tag"}); got != "Symbol(tag)" {
		t.Fatalf("symbol = %q", got)
	}
	if got := quoteSymbol(Symbol{Description: "two words"}); got != `Symbol("two words")` {
		t.Fatalf("quoted symbol = %q", got)
	}
	if got := quoteSymbol(Symbol{}); got != "Symbol()" {
		t.Fatalf("empty symbol = %q", got)
	}
}
