package inspectx

import (
	"math"
	"math/big"
	"testing"
)

func TestFormatArgs_Basic(t *testing.T) {
	if got := FormatArgs("%s is %d", "answer", 42); got != "answer is 42" {
		t.Fatalf("basic = %q", got)
	}
	if got := FormatArgs("100%% sure"); got != "100% sure" {
		t.Fatalf("percent = %q", got)
	}
	if got := FormatArgs("no directives"); got != "no directives" {
		t.Fatalf("plain = %q", got)
	}
}

func TestFormatArgs_ExhaustedArgsKeepDirective(t *testing.T) {
	if got := FormatArgs("%s and %d", "only"); got != "only and %d" {
		t.Fatalf("exhausted = %q", got)
	}
	if got := FormatArgs("%s"); got != "%s" {
		t.Fatalf("no args = %q", got)
	}
}

func TestFormatArgs_UnknownDirectiveIsLiteral(t *testing.T) {
	if got := FormatArgs("%q %s", "x"); got != "%q x" {
		t.Fatalf("unknown = %q", got)
	}
	if got := FormatArgs("50%"); got != "50%" {
		t.Fatalf("trailing percent = %q", got)
	}
}

func TestFormatArgs_LeftoverArgs(t *testing.T) {
	if got := FormatArgs("result:", 42, "done"); got != "result: 42 done" {
		t.Fatalf("leftovers = %q", got)
	}
	if got := FormatArgs("list:", []any{1, 2}); got != "list: [ 1, 2 ]" {
		t.Fatalf("leftover container = %q", got)
	}
}

func TestFormatArgs_TextDirective(t *testing.T) {
	// Strings pass through unquoted; everything else inspects.
	if got := FormatArgs("%s", "raw text"); got != "raw text" {
		t.Fatalf("text = %q", got)
	}
	if got := FormatArgs("%s", 1.5); got != "1.5" {
		t.Fatalf("number as text = %q", got)
	}
	if got := FormatArgs("%s", big.NewInt(9)); got != "9n" {
		t.Fatalf("bigint as text = %q", got)
	}
	if got := FormatArgs("%s", []any{1}); got != "[ 1 ]" {
		t.Fatalf("container as text = %q", got)
	}
}

func TestFormatArgs_IntegerDirective(t *testing.T) {
	if got := FormatArgs("%d", 7); got != "7" {
		t.Fatalf("int = %q", got)
	}
	if got := FormatArgs("%i", 7); got != "7" {
		t.Fatalf("%%i alias = %q", got)
	}
	if got := FormatArgs("%d", 3.9); got != "3" {
		t.Fatalf("truncated float = %q", got)
	}
	if got := FormatArgs("%d", -3.9); got != "-3" {
		t.Fatalf("truncation toward zero = %q", got)
	}
	if got := FormatArgs("%d", big.NewInt(42)); got != "42n" {
		t.Fatalf("bigint = %q", got)
	}
	if got := FormatArgs("%d", "nope"); got != "NaN" {
		t.Fatalf("non-number = %q", got)
	}
	if got := FormatArgs("%d", math.Inf(1)); got != "Infinity" {
		t.Fatalf("infinity = %q", got)
	}
}

func TestFormatArgs_FloatDirective(t *testing.T) {
	if got := FormatArgs("%f", 1.25); got != "1.25" {
		t.Fatalf("float = %q", got)
	}
	if got := FormatArgs("%f", "x"); got != "NaN" {
		t.Fatalf("non-number = %q", got)
	}
}

func TestFormatArgs_InspectDirective(t *testing.T) {
	if got := FormatArgs("%o", []any{1, "a"}); got != `[ 1, "a" ]` {
		t.Fatalf("%%o = %q", got)
	}
	// Unlike %s, %o quotes bare text.
	if got := FormatArgs("%O", "text"); got != `"text"` {
		t.Fatalf("%%O text = %q", got)
	}
}

func TestFormatArgs_StyleDirective(t *testing.T) {
	got := FormatArgs("%cA%cB", "color: red; font-weight: bold", "")
	want := "\x1b[1;38;2;255;0;0mA\x1b[22;39mB\x1b[0m"
	if got != want {
		t.Fatalf("style = %q, want %q", got, want)
	}

	// Identical consecutive styles emit no transition.
	got = FormatArgs("%cA%cB", "font-style: italic", "font-style: italic")
	want = "\x1b[3mA" + "B\x1b[0m"
	if got != want {
		t.Fatalf("idempotent style = %q, want %q", got, want)
	}
}

func TestFormatArgs_StyleDecoration(t *testing.T) {
	got := FormatArgs("%cx", "text-decoration: underline line-through")
	want := "\x1b[4;9mx\x1b[0m"
	if got != want {
		t.Fatalf("decoration = %q, want %q", got, want)
	}
	got = FormatArgs("%cx", "background: #00ff00")
	want = "\x1b[48;2;0;255;0mx\x1b[0m"
	if got != want {
		t.Fatalf("background = %q, want %q", got, want)
	}
}

func TestParseColorValue(t *testing.T) {
	cases := []struct {
		in   string
		want RGB
		ok   bool
	}{
		{"#ff0000", RGB{255, 0, 0}, true},
		{"#f00", RGB{255, 0, 0}, true},
		{"rgb(1, 2, 3)", RGB{1, 2, 3}, true},
		{"rgba(1, 2, 3, 0.5)", RGB{1, 2, 3}, true},
		{"red", RGB{255, 0, 0}, true},
		{"REd", RGB{255, 0, 0}, true},
		{"#12345", RGB{}, false},
		{"rgb(300, 0, 0)", RGB{}, false},
		{"nonsense", RGB{}, false},
	}
	for _, tc := range cases {
		got, ok := parseColorValue(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("parseColorValue(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestInspectArgs_StyleResetOnlyWhenStyled(t *testing.T) {
	got := FormatArgs("plain %d", 1)
	if got != "plain 1" {
		t.Fatalf("unstyled output must carry no escape codes: %q", got)
	}
}
